// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/predictdash/predict-mcp/internal/feature"
)

// MetadataReconcileValues describes the reconcile_values tool.
var MetadataReconcileValues = &mcp.Tool{
	Name: "reconcile_values",
	Description: "Align previously entered form values with a new feature list. " +
		"Values of features that are still present are kept unchanged, new features start empty " +
		"and values of features that disappeared are dropped.",
}

// InputReconcileValues is the input for the ReconcileValues tool.
type InputReconcileValues struct {
	Features []feature.Descriptor `json:"features" jsonschema:"feature descriptors returned by normalize_schema"`
	Values   map[string]any       `json:"values,omitempty" jsonschema:"previously entered values keyed by feature name"`
}

// OutputReconcileValues is the output for the ReconcileValues tool.
type OutputReconcileValues struct {
	Values map[string]any `json:"values"`
}

// ReconcileValues returns one value per feature, carrying over known ones.
func (ts *Toolset) ReconcileValues(_ context.Context, _ *mcp.CallToolRequest, input InputReconcileValues) (*mcp.CallToolResult, OutputReconcileValues, error) {
	prev, err := storeFrom(input.Values)
	if err != nil {
		return nil, OutputReconcileValues{}, err
	}
	next := feature.Reconcile(input.Features, prev)
	return nil, OutputReconcileValues{Values: next.Raw()}, nil
}
