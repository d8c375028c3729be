// SPDX-License-Identifier: Apache-2.0

// Package payload decodes the backend documents the prediction form works
// from: the dataset schema, the model report, the cached upload response and
// saved form values. JSON and YAML are both accepted.
package payload

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/predictdash/predict-mcp/internal/feature"
)

// ErrEmpty is returned for blank documents.
var ErrEmpty = errors.New("payload: empty document")

// Decode parses a JSON or YAML document. Mappings decode as yaml.MapSlice so
// that key order survives into enumerations given as objects.
func Decode(content []byte) (any, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmpty
	}
	var doc any
	if err := yaml.UnmarshalWithOptions(content, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML/JSON: %w", err)
	}
	return doc, nil
}

// record returns v as a flat key/value map when it is a mapping. Nested
// values are left untouched.
func record(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case yaml.MapSlice:
		m := make(map[string]any, len(t))
		for _, item := range t {
			k := feature.Stringify(item.Key)
			if _, dup := m[k]; dup {
				continue
			}
			m[k] = item.Value
		}
		return m, true
	case map[string]any:
		return t, true
	}
	return nil, false
}

func decodeRecord(content []byte, what string) (map[string]any, error) {
	doc, err := Decode(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	m, ok := record(doc)
	if !ok {
		return nil, fmt.Errorf("%s: expected an object at the document root", what)
	}
	return m, nil
}
