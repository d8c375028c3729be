// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"slices"
	"strings"
)

// kindRule maps a set of trigger tokens to a value kind. A rule matches when
// either the input-type hint or the declared type contains one of its tokens.
type kindRule struct {
	tokens []string
	kind   ValueKind
}

// hintRules are evaluated in order; the first match wins. Dates and booleans
// come before any numeric heuristic because 0/1 flags and epoch dates would
// otherwise look numeric.
var hintRules = []kindRule{
	{tokens: []string{"date", "timestamp"}, kind: Date},
	{tokens: []string{"bool"}, kind: Boolean},
}

// numericHints are input-type hints that mark a numeric field on exact match.
var numericHints = []string{"numeric", "number"}

// numericTypeTokens are substrings of a declared type that mark a numeric field.
var numericTypeTokens = []string{"int", "integer", "float", "double", "decimal", "number", "numeric"}

// booleanCategories is the fixed domain of every Boolean feature.
var booleanCategories = []string{"true", "false"}

// Hints carries the lower-cased type information read from a raw field.
type Hints struct {
	DeclaredType string
	InputType    string
	// NumericFlag is the explicit numeric flag; HasNumericFlag reports
	// whether the field carried one at all.
	NumericFlag    bool
	HasNumericFlag bool
}

// InferKind classifies a field from its hints.
func InferKind(h Hints) ValueKind {
	for _, rule := range hintRules {
		for _, tok := range rule.tokens {
			if strings.Contains(h.InputType, tok) || strings.Contains(h.DeclaredType, tok) {
				return rule.kind
			}
		}
	}
	if looksNumeric(h) {
		return Numeric
	}
	return Categorical
}

func looksNumeric(h Hints) bool {
	if h.HasNumericFlag {
		return h.NumericFlag
	}
	if slices.Contains(numericHints, h.InputType) {
		return true
	}
	for _, tok := range numericTypeTokens {
		if strings.Contains(h.DeclaredType, tok) {
			return true
		}
	}
	return false
}

// categoriesFor returns the category list for a field of the given kind.
// The result is never nil.
func categoriesFor(kind ValueKind, options []any) []string {
	switch kind {
	case Boolean:
		return slices.Clone(booleanCategories)
	case Categorical:
		out := make([]string, 0, len(options))
		for _, o := range options {
			out = append(out, Stringify(o))
		}
		return out
	}
	return []string{}
}
