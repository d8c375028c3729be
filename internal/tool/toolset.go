// SPDX-License-Identifier: Apache-2.0

// Package tool exposes the prediction-form operations as MCP tools.
package tool

import (
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/predictdash/predict-mcp/internal/feature"
	"github.com/predictdash/predict-mcp/internal/logging"
	"github.com/predictdash/predict-mcp/internal/predict"
)

// Toolset holds the state shared by the tool handlers.
type Toolset struct {
	contract *predict.Contract
	strict   bool
	logger   *slog.Logger
}

// NewToolset compiles the request contract. With strict set, a built request
// that violates the contract is reported as a tool error.
func NewToolset(strict bool) (*Toolset, error) {
	c, err := predict.NewContract()
	if err != nil {
		return nil, err
	}
	return &Toolset{contract: c, strict: strict, logger: logging.New("tool")}, nil
}

// NewServer returns an MCP server with every tool registered.
func NewServer(version string, ts *Toolset) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{Name: "predict-mcp", Version: version}, nil)
	mcp.AddTool(s, MetadataNormalizeSchema, ts.NormalizeSchema)
	mcp.AddTool(s, MetadataReconcileValues, ts.ReconcileValues)
	mcp.AddTool(s, MetadataResolveModelSelection, ts.ResolveModelSelection)
	mcp.AddTool(s, MetadataBuildPredictionRequest, ts.BuildPredictionRequest)
	return s
}

// storeFrom converts tool arguments into a value store. Only scalars are
// accepted as entered values.
func storeFrom(values map[string]any) (feature.ValueStore, error) {
	store := make(feature.ValueStore, len(values))
	for k, v := range values {
		switch v.(type) {
		case nil, bool, string, float64, int, int64:
			store[k] = feature.ValueOf(v)
		default:
			return nil, fmt.Errorf("value for %q must be a string, boolean or null", k)
		}
	}
	return store, nil
}
