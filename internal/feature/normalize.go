// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeField converts one raw field into a Descriptor. When the field
// cannot be represented the returned Exclusion says why and the Descriptor is
// the zero value. NormalizeField never fails; unknown shapes fall back to a
// categorical descriptor.
func NormalizeField(raw RawField, target string) (Descriptor, Exclusion) {
	name, ok := nameKeys.Str(raw)
	if !ok {
		return Descriptor{}, ExcludedUnnamed
	}
	if target != "" && name == target {
		return Descriptor{}, ExcludedTargetName
	}
	if targetKeys.AnyFlag(raw) {
		return Descriptor{}, ExcludedTargetFlag
	}

	hints := readHints(raw)
	kind := InferKind(hints)

	var options []any
	if v, ok := optionKeys.Lookup(raw); ok {
		options = enumeration(v)
	}

	label, ok := labelKeys.Str(raw)
	if !ok {
		label = DeriveLabel(name)
	}

	return Descriptor{
		Name:         name,
		Label:        label,
		DeclaredType: hints.DeclaredType,
		Kind:         kind,
		Categories:   categoriesFor(kind, options),
	}, NotExcluded
}

func readHints(raw RawField) Hints {
	var h Hints
	if v, ok := typeKeys.Lookup(raw); ok {
		h.DeclaredType = strings.ToLower(Stringify(v))
	}
	if v, ok := inputTypeKeys.Lookup(raw); ok {
		h.InputType = strings.ToLower(Stringify(v))
	}
	h.NumericFlag, h.HasNumericFlag = numericKeys.Flag(raw)
	return h
}

// DeriveLabel builds a display label from a column name: underscores become
// spaces and each word starts upper-case.
func DeriveLabel(name string) string {
	// A Caser is stateful and not safe for concurrent use.
	return cases.Title(language.Und, cases.NoLower).String(strings.ReplaceAll(name, "_", " "))
}
