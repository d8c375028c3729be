// SPDX-License-Identifier: Apache-2.0

// Package feature turns loosely shaped schema payloads into typed feature
// descriptors and keeps entered form values aligned with them.
package feature

// RawField is one backend-supplied column description. No key is guaranteed
// to be present; see the alias tables in alias.go for the keys that are read.
type RawField map[string]any

// ValueKind classifies the value domain of a feature.
type ValueKind string

const (
	Numeric     ValueKind = "numeric"
	Boolean     ValueKind = "boolean"
	Date        ValueKind = "date"
	Categorical ValueKind = "categorical"
)

// Descriptor is the canonical description of one non-target feature.
type Descriptor struct {
	Name         string    `json:"name"`
	Label        string    `json:"label"`
	DeclaredType string    `json:"declared_type,omitempty"`
	Kind         ValueKind `json:"value_kind"`
	// Categories is non-empty only for Categorical and Boolean features.
	Categories []string `json:"categories,omitempty"`
}

// Uncategorized reports a categorical feature that came without any legal
// values. Callers usually render it as free text.
func (d Descriptor) Uncategorized() bool {
	return d.Kind == Categorical && len(d.Categories) == 0
}

// Exclusion explains why a raw field produced no descriptor.
type Exclusion int

const (
	NotExcluded Exclusion = iota
	ExcludedUnnamed
	ExcludedTargetName
	ExcludedTargetFlag
	ExcludedDuplicate
)

func (e Exclusion) String() string {
	switch e {
	case NotExcluded:
		return "included"
	case ExcludedUnnamed:
		return "unnamed"
	case ExcludedTargetName:
		return "target_column"
	case ExcludedTargetFlag:
		return "target_flag"
	case ExcludedDuplicate:
		return "duplicate"
	}
	return "unknown"
}
