// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/predictdash/predict-mcp/internal/feature"
	"github.com/predictdash/predict-mcp/internal/payload"
)

// MetadataNormalizeSchema describes the normalize_schema tool.
var MetadataNormalizeSchema = &mcp.Tool{
	Name: "normalize_schema",
	Description: "Normalize a dataset schema document into typed feature descriptors. " +
		"The document may be JSON or YAML and may use any of the known key spellings " +
		"(name/columnName, dataType/type, input_type/inputType, raw_labels/categories/values, ...). " +
		"The target column and any field flagged as target are excluded. Each descriptor has a " +
		"value_kind of numeric, boolean, date or categorical; categorical features listed under " +
		"uncategorized have no legal values and should be entered as free text.",
}

// InputNormalizeSchema is the input for the NormalizeSchema tool.
type InputNormalizeSchema struct {
	Content      string `json:"content" jsonschema:"raw schema document (JSON or YAML) as returned by the schema endpoint"`
	TargetColumn string `json:"target_column,omitempty" jsonschema:"target column to exclude; defaults to the one named in the document"`
}

// ExcludedField is a schema entry that produced no feature.
type ExcludedField struct {
	Index  int    `json:"index"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

// OutputNormalizeSchema is the output for the NormalizeSchema tool.
type OutputNormalizeSchema struct {
	Features      []feature.Descriptor `json:"features"`
	Excluded      []ExcludedField      `json:"excluded"`
	Uncategorized []string             `json:"uncategorized"`
	TargetColumn  string               `json:"target_column"`
	Version       string               `json:"version"`
}

// NormalizeSchema decodes the schema document and normalizes its fields.
func (ts *Toolset) NormalizeSchema(_ context.Context, _ *mcp.CallToolRequest, input InputNormalizeSchema) (*mcp.CallToolResult, OutputNormalizeSchema, error) {
	if input.Content == "" {
		return nil, OutputNormalizeSchema{}, fmt.Errorf("content is required")
	}
	schema, err := payload.ParseSchema([]byte(input.Content))
	if err != nil {
		return nil, OutputNormalizeSchema{}, err
	}

	target := input.TargetColumn
	if target == "" {
		target = schema.Target
	}
	res := feature.Normalize(schema.Fields, target)

	excluded := make([]ExcludedField, 0, len(res.Excluded))
	for _, e := range res.Excluded {
		ts.logger.Debug("schema field excluded", "index", e.Index, "name", e.Name, "reason", e.Reason.String())
		excluded = append(excluded, ExcludedField{Index: e.Index, Name: e.Name, Reason: e.Reason.String()})
	}
	if len(res.Uncategorized) > 0 {
		ts.logger.Info("categorical features without legal values", "features", res.Uncategorized)
	}

	return nil, OutputNormalizeSchema{
		Features:      res.Descriptors,
		Excluded:      excluded,
		Uncategorized: res.Uncategorized,
		TargetColumn:  target,
		Version:       schema.Version,
	}, nil
}
