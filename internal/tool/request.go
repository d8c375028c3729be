// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/predictdash/predict-mcp/internal/feature"
	"github.com/predictdash/predict-mcp/internal/predict"
)

// MetadataBuildPredictionRequest describes the build_prediction_request tool.
var MetadataBuildPredictionRequest = &mcp.Tool{
	Name: "build_prediction_request",
	Description: "Validate entered feature values and build the typed prediction request. " +
		"Checks run in order (dataset, model, version, then every feature in declared order) and stop " +
		"at the first problem, which is returned as failure.kind with a user-facing message. " +
		"On success the request has boolean features as true/false, numeric features as numbers " +
		"(null when the entry is not a number) and all other features as the entered text.",
}

// InputBuildPredictionRequest is the input for the BuildPredictionRequest tool.
type InputBuildPredictionRequest struct {
	Features  []feature.Descriptor `json:"features" jsonschema:"feature descriptors returned by normalize_schema"`
	Values    map[string]any       `json:"values,omitempty" jsonschema:"entered values keyed by feature name"`
	ModelName string               `json:"model_name,omitempty" jsonschema:"selected model name"`
	DatasetID string               `json:"dataset_id,omitempty" jsonschema:"dataset identifier"`
	Version   string               `json:"version,omitempty" jsonschema:"schema version"`
}

// Failure is a validation failure reported by BuildPredictionRequest.
type Failure struct {
	Kind    string `json:"kind"`
	Label   string `json:"label,omitempty"`
	Message string `json:"message"`
}

// OutputBuildPredictionRequest is the output for the BuildPredictionRequest tool.
type OutputBuildPredictionRequest struct {
	Valid   bool             `json:"valid"`
	Request *predict.Request `json:"request,omitempty"`
	Failure *Failure         `json:"failure,omitempty"`
}

// BuildPredictionRequest validates the inputs and builds the request.
// Validation failures are part of the output, not tool errors.
func (ts *Toolset) BuildPredictionRequest(_ context.Context, _ *mcp.CallToolRequest, input InputBuildPredictionRequest) (*mcp.CallToolResult, OutputBuildPredictionRequest, error) {
	store, err := storeFrom(input.Values)
	if err != nil {
		return nil, OutputBuildPredictionRequest{}, err
	}

	req, err := predict.BuildRequest(store, input.Features, input.ModelName, input.DatasetID, input.Version)
	var verr *predict.ValidationError
	if errors.As(err, &verr) {
		ts.logger.Debug("prediction request rejected", "kind", verr.Kind, "label", verr.Label)
		return nil, OutputBuildPredictionRequest{
			Failure: &Failure{Kind: string(verr.Kind), Label: verr.Label, Message: verr.Message()},
		}, nil
	}
	if err != nil {
		return nil, OutputBuildPredictionRequest{}, err
	}

	if err := ts.contract.Check(req); err != nil {
		if ts.strict {
			return nil, OutputBuildPredictionRequest{}, err
		}
		ts.logger.Warn("prediction request violates contract", "error", err)
	}
	return nil, OutputBuildPredictionRequest{Valid: true, Request: &req}, nil
}
