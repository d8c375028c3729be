// SPDX-License-Identifier: Apache-2.0

// Package selection keeps a stable model choice while the list of trained
// models changes underneath it.
package selection

import (
	"strings"

	"github.com/predictdash/predict-mcp/internal/feature"
)

// RawModel is one entry of a backend model list.
type RawModel map[string]any

var modelNameKeys = feature.Aliases{Keys: []string{"name", "model_name", "modelName"}}

// Selection is the set of selectable model names and the current pick.
// Current is empty when nothing is selected.
type Selection struct {
	Available []string `json:"available"`
	Current   string   `json:"current"`
}

// Selected reports whether a model is selected.
func (s Selection) Selected() bool { return s.Current != "" }

// ModelNames extracts model names in list order, skipping records without a
// name and repeated names.
func ModelNames(records []RawModel) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		name, ok := modelNameKeys.Str(r)
		if !ok {
			continue
		}
		names = append(names, strings.TrimSpace(name))
	}
	return dedupe(names)
}

// Resolve keeps previous when it is still available and otherwise falls back
// to the first candidate. Candidates are deduplicated, first occurrence wins.
func Resolve(candidates []string, previous string) Selection {
	available := dedupe(candidates)
	sel := Selection{Available: available}
	if len(available) == 0 {
		return sel
	}
	sel.Current = available[0]
	for _, name := range available {
		if name == previous {
			sel.Current = previous
			break
		}
	}
	return sel
}

// ResolveModels resolves a selection directly from raw model records.
func ResolveModels(records []RawModel, previous string) Selection {
	return Resolve(ModelNames(records), previous)
}

func dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
