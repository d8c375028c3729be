// SPDX-License-Identifier: Apache-2.0

package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predictdash/predict-mcp/internal/tool"
)

func connectInMemory(t *testing.T, ctx context.Context) *mcp.ClientSession {
	t.Helper()
	ts, err := tool.NewToolset(true)
	require.NoError(t, err)
	srv := tool.NewServer("test", ts)

	t1, t2 := mcp.NewInMemoryTransports()
	serverSession, err := srv.Connect(ctx, t1, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callTool(t *testing.T, ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) (map[string]any, bool) {
	t.Helper()
	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			if res.IsError {
				return map[string]any{"error": tc.Text}, true
			}
			out := map[string]any{}
			require.NoError(t, json.Unmarshal([]byte(tc.Text), &out), tc.Text)
			return out, false
		}
	}
	t.Fatalf("no text content in %s result", name)
	return nil, res.IsError
}

func TestServer_ToolDiscovery(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx)

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	var names []string
	for _, tl := range tools.Tools {
		names = append(names, tl.Name)
	}
	assert.ElementsMatch(t, []string{
		"normalize_schema",
		"reconcile_values",
		"resolve_model_selection",
		"build_prediction_request",
	}, names)
}

func TestServer_PredictFlow(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx)

	schema, isErr := callTool(t, ctx, session, "normalize_schema", map[string]any{
		"content": "target_column: price\nversion: 4\ncolumns:\n  - name: rooms\n    dataType: int\n  - name: district\n    values: [north, south]\n  - name: price\n",
	})
	require.False(t, isErr, schema)
	assert.Equal(t, "4", schema["version"])
	features, ok := schema["features"].([]any)
	require.True(t, ok)
	require.Len(t, features, 2)

	reconciled, isErr := callTool(t, ctx, session, "reconcile_values", map[string]any{
		"features": features,
		"values":   map[string]any{"rooms": "3", "gone": "x"},
	})
	require.False(t, isErr, reconciled)
	assert.Equal(t, map[string]any{"rooms": "3", "district": ""}, reconciled["values"])

	models, isErr := callTool(t, ctx, session, "resolve_model_selection", map[string]any{
		"models":  []any{map[string]any{"name": "ridge"}, map[string]any{"name": "lasso"}},
		"current": "lasso",
	})
	require.False(t, isErr, models)
	assert.Equal(t, "lasso", models["current"])

	failed, isErr := callTool(t, ctx, session, "build_prediction_request", map[string]any{
		"features":   features,
		"values":     reconciled["values"],
		"model_name": "lasso",
		"dataset_id": "9",
		"version":    "4",
	})
	require.False(t, isErr, failed)
	assert.Equal(t, false, failed["valid"])
	assert.Equal(t, map[string]any{"kind": "missing_feature_value", "label": "District", "message": "please provide a value for District"}, failed["failure"])

	built, isErr := callTool(t, ctx, session, "build_prediction_request", map[string]any{
		"features":   features,
		"values":     map[string]any{"rooms": "3", "district": "north"},
		"model_name": "lasso",
		"dataset_id": "9",
		"version":    "4",
	})
	require.False(t, isErr, built)
	assert.Equal(t, true, built["valid"])
	assert.Equal(t, map[string]any{
		"datasetId":  float64(9),
		"version":    float64(4),
		"model_Name": "lasso",
		"features":   map[string]any{"rooms": float64(3), "district": "north"},
	}, built["request"])
}

func TestServer_MinimalDescriptors(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx)

	built, isErr := callTool(t, ctx, session, "build_prediction_request", map[string]any{
		"features": []any{
			map[string]any{"name": "rooms", "label": "Rooms", "value_kind": "numeric"},
			map[string]any{"name": "garden", "label": "Garden", "value_kind": "boolean"},
		},
		"values":     map[string]any{"rooms": "2", "garden": true},
		"model_name": "ridge",
		"dataset_id": "5",
		"version":    "1",
	})
	require.False(t, isErr, built)
	assert.Equal(t, true, built["valid"])
	assert.Equal(t, map[string]any{"rooms": float64(2), "garden": true}, built["request"].(map[string]any)["features"])
}

func TestServer_ToolError(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx)

	out, isErr := callTool(t, ctx, session, "normalize_schema", map[string]any{"content": "[unclosed"})
	assert.True(t, isErr)
	assert.Contains(t, out["error"], "schema")
}
