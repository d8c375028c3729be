// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/predictdash/predict-mcp/internal/selection"
)

// MetadataResolveModelSelection describes the resolve_model_selection tool.
var MetadataResolveModelSelection = &mcp.Tool{
	Name: "resolve_model_selection",
	Description: "Derive the selectable model names from a model list (the all_models entries of a " +
		"model report) and keep the current selection stable: it is preserved while still available, " +
		"otherwise the first model is selected, or nothing when the list is empty.",
}

// InputResolveModelSelection is the input for the ResolveModelSelection tool.
type InputResolveModelSelection struct {
	Models  []map[string]any `json:"models" jsonschema:"model records, each carrying at least a name"`
	Current string           `json:"current,omitempty" jsonschema:"currently selected model name"`
}

// OutputResolveModelSelection is the output for the ResolveModelSelection tool.
type OutputResolveModelSelection struct {
	Available []string `json:"available"`
	Current   string   `json:"current"`
	// Changed is true when the selection differs from the input.
	Changed bool `json:"changed"`
}

// ResolveModelSelection resolves the model selection against a model list.
func (ts *Toolset) ResolveModelSelection(_ context.Context, _ *mcp.CallToolRequest, input InputResolveModelSelection) (*mcp.CallToolResult, OutputResolveModelSelection, error) {
	records := make([]selection.RawModel, len(input.Models))
	for i, m := range input.Models {
		records[i] = selection.RawModel(m)
	}
	sel := selection.ResolveModels(records, input.Current)
	if input.Current != "" && sel.Current != input.Current {
		ts.logger.Info("selected model no longer available", "previous", input.Current, "current", sel.Current)
	}
	return nil, OutputResolveModelSelection{
		Available: sel.Available,
		Current:   sel.Current,
		Changed:   sel.Current != input.Current,
	}, nil
}
