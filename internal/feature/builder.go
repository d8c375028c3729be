// SPDX-License-Identifier: Apache-2.0

package feature

// Excluded records a raw field that did not become a descriptor.
type Excluded struct {
	// Index is the position of the field in the raw schema.
	Index  int
	Name   string
	Reason Exclusion
}

// Result is the output of a schema normalization run.
type Result struct {
	Descriptors []Descriptor
	Excluded    []Excluded
	// Uncategorized holds the names of categorical descriptors without any
	// legal values.
	Uncategorized []string
}

// Names returns the descriptor names in declared order.
func (r Result) Names() []string {
	names := make([]string, len(r.Descriptors))
	for i, d := range r.Descriptors {
		names[i] = d.Name
	}
	return names
}

// Normalize applies NormalizeField to every raw field in order. Exclusions are
// dropped from the descriptor set and reported alongside it. When a name is
// repeated the first occurrence wins.
func Normalize(fields []RawField, target string) Result {
	res := Result{
		Descriptors:   make([]Descriptor, 0, len(fields)),
		Uncategorized: []string{},
	}
	seen := make(map[string]struct{}, len(fields))
	for i, raw := range fields {
		d, reason := NormalizeField(raw, target)
		if reason == NotExcluded {
			if _, dup := seen[d.Name]; dup {
				reason = ExcludedDuplicate
			}
		}
		if reason != NotExcluded {
			name, _ := nameKeys.Str(raw)
			res.Excluded = append(res.Excluded, Excluded{Index: i, Name: name, Reason: reason})
			continue
		}
		seen[d.Name] = struct{}{}
		res.Descriptors = append(res.Descriptors, d)
		if d.Uncategorized() {
			res.Uncategorized = append(res.Uncategorized, d.Name)
		}
	}
	return res
}

// NormalizeSchema returns the ordered descriptor set for a raw schema.
func NormalizeSchema(fields []RawField, target string) []Descriptor {
	return Normalize(fields, target).Descriptors
}
