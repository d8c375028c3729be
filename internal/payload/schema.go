// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"fmt"

	"github.com/predictdash/predict-mcp/internal/feature"
)

var (
	targetKeys  = feature.Aliases{Keys: []string{"target_column", "targetColumn", "target"}}
	versionKeys = feature.Aliases{Keys: []string{"version", "Version", "data_version"}}
	columnKeys  = feature.Aliases{Keys: []string{"columns", "schema", "fields", "data"}}
)

// Schema is a decoded dataset schema document.
type Schema struct {
	Target  string
	Version string
	Fields  []feature.RawField
}

// ParseSchema decodes a schema document. The root is either an object that
// carries the column list under one of several keys, possibly nested one
// level inside an envelope, or the column list itself.
func ParseSchema(content []byte) (Schema, error) {
	doc, err := Decode(content)
	if err != nil {
		return Schema{}, fmt.Errorf("schema: %w", err)
	}
	if list, ok := doc.([]any); ok {
		return Schema{Fields: rawFields(list)}, nil
	}
	root, ok := record(doc)
	if !ok {
		return Schema{}, fmt.Errorf("schema: expected an object or a list at the document root")
	}
	return schemaFrom(root, true)
}

func schemaFrom(root map[string]any, envelope bool) (Schema, error) {
	s := Schema{}
	s.Target, _ = targetKeys.Text(root)
	s.Version, _ = versionKeys.Text(root)

	cols, ok := columnKeys.Lookup(root)
	if !ok {
		return s, nil
	}
	if list, ok := cols.([]any); ok {
		s.Fields = rawFields(list)
		return s, nil
	}
	inner, isRecord := record(cols)
	if !isRecord || !envelope {
		return Schema{}, fmt.Errorf("schema: column list has unsupported type %T", cols)
	}
	nested, err := schemaFrom(inner, false)
	if err != nil {
		return Schema{}, err
	}
	// Outer identifiers win over the envelope's own.
	if s.Target != "" {
		nested.Target = s.Target
	}
	if s.Version != "" {
		nested.Version = s.Version
	}
	return nested, nil
}

// rawFields converts column entries to raw fields. A bare string entry is a
// column with only a name; other scalars are dropped.
func rawFields(list []any) []feature.RawField {
	fields := make([]feature.RawField, 0, len(list))
	for _, item := range list {
		if name, ok := item.(string); ok {
			fields = append(fields, feature.RawField{"name": name})
			continue
		}
		if m, ok := record(item); ok {
			fields = append(fields, feature.RawField(m))
		}
	}
	return fields
}
