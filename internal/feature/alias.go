// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Aliases is an ordered list of keys under which one logical attribute may be
// found. Keys are tried in order and the first usable value wins.
type Aliases struct {
	Keys []string
	// FoldCase enables a final case-insensitive pass over the record keys
	// once every exact key has missed.
	FoldCase bool
}

// Lookup returns the first usable value stored under one of the keys. nil
// and blank strings count as absent, so a later alias can still supply the
// attribute.
func (a Aliases) Lookup(m map[string]any) (any, bool) {
	for _, k := range a.Keys {
		if v := m[k]; usable(v) {
			return v, true
		}
	}
	if !a.FoldCase {
		return nil, false
	}
	// Map iteration is unordered, so sort to keep the pick deterministic.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, want := range a.Keys {
		for _, k := range keys {
			if strings.EqualFold(k, want) && usable(m[k]) {
				return m[k], true
			}
		}
	}
	return nil, false
}

// Str returns the first non-blank string value.
func (a Aliases) Str(m map[string]any) (string, bool) {
	for _, k := range a.Keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	if a.FoldCase {
		if v, ok := a.Lookup(m); ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s, true
			}
		}
	}
	return "", false
}

// Text is like Str but also renders numbers, so identifiers such as
// versions and dataset ids may arrive either way.
func (a Aliases) Text(m map[string]any) (string, bool) {
	for _, k := range a.Keys {
		if s := Stringify(m[k]); strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s), true
		}
	}
	return "", false
}

// Flag reports whether the first present flag is truthy. ok is false when
// none of the keys is present.
func (a Aliases) Flag(m map[string]any) (value, ok bool) {
	v, ok := a.Lookup(m)
	if !ok {
		return false, false
	}
	return truthy(v), true
}

// AnyFlag reports whether any of the keys holds a truthy value.
func (a Aliases) AnyFlag(m map[string]any) bool {
	for _, k := range a.Keys {
		if truthy(m[k]) {
			return true
		}
	}
	return false
}

var (
	nameKeys      = Aliases{Keys: []string{"name", "columnName", "ColumnName", "column_name"}}
	labelKeys     = Aliases{Keys: []string{"label", "displayName", "display_name"}}
	typeKeys      = Aliases{Keys: []string{"dataType", "type", "Type", "data_type", "dtype"}, FoldCase: true}
	inputTypeKeys = Aliases{Keys: []string{"input_type", "inputType"}, FoldCase: true}
	targetKeys    = Aliases{Keys: []string{"is_target", "isTarget"}}
	numericKeys   = Aliases{Keys: []string{"isNumeric", "is_numeric"}}
	optionKeys    = Aliases{Keys: []string{"raw_labels", "rawLabels", "categories", "uniqueValues", "unique_values", "values"}}
)

func usable(v any) bool {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return v != nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	}
	return false
}

// enumeration flattens a legal-values entry into an ordered slice.
func enumeration(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case yaml.MapSlice:
		out := make([]any, 0, len(t))
		for _, item := range t {
			out = append(out, item.Value)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]any, 0, len(t))
		for _, k := range keys {
			out = append(out, t[k])
		}
		return out
	}
	return nil
}

// Stringify renders a decoded scalar the way a form would display it. nil
// becomes the empty string and floats use their shortest representation.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	}
	b, err := yaml.MarshalWithOptions(v, yaml.Flow(true))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
