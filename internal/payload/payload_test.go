// SPDX-License-Identifier: Apache-2.0

package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predictdash/predict-mcp/internal/feature"
	"github.com/predictdash/predict-mcp/internal/payload"
	"github.com/predictdash/predict-mcp/internal/predict"
)

// ---------------------------------------------------------------------------
// ParseSchema
// ---------------------------------------------------------------------------

const yamlSchema = `target_column: price
version: 3
columns:
  - name: age
    dataType: integer
  - name: city
    raw_labels:
      z: Zurich
      a: Amsterdam
      m: null
  - name: price
    is_target: true
  - columnName: is_active
    input_type: boolean
`

func TestParseSchema_YAML(t *testing.T) {
	s, err := payload.ParseSchema([]byte(yamlSchema))
	require.NoError(t, err)
	assert.Equal(t, "price", s.Target)
	assert.Equal(t, "3", s.Version)
	require.Len(t, s.Fields, 4)

	descs := feature.NormalizeSchema(s.Fields, s.Target)
	require.Len(t, descs, 3)
	assert.Equal(t, "city", descs[1].Name)
	assert.Equal(t, []string{"Zurich", "Amsterdam", ""}, descs[1].Categories, "object enumerations keep document order")
	assert.Equal(t, feature.Boolean, descs[2].Kind)
}

func TestParseSchema_JSONAliases(t *testing.T) {
	content := `{"targetColumn": "price", "Version": "7", "fields": [{"columnName": "age", "dataType": "INTEGER"}, {"name": "price"}]}`
	s, err := payload.ParseSchema([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, "price", s.Target)
	assert.Equal(t, "7", s.Version)

	descs := feature.NormalizeSchema(s.Fields, s.Target)
	require.Len(t, descs, 1)
	assert.Equal(t, feature.Numeric, descs[0].Kind)
}

func TestParseSchema_Shapes(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantTarget  string
		wantVersion string
		wantNames   []string
	}{
		{
			name:      "root list",
			content:   `[{"name": "a"}, {"name": "b"}]`,
			wantNames: []string{"a", "b"},
		},
		{
			name:        "envelope with outer version",
			content:     `{"data_version": 2.0, "data": {"target": "y", "schema": [{"name": "x"}]}}`,
			wantTarget:  "y",
			wantVersion: "2",
			wantNames:   []string{"x"},
		},
		{
			name:       "bare string columns and dropped scalars",
			content:    `{"target": "y", "columns": ["x", 4, "y", {"name": "z"}]}`,
			wantTarget: "y",
			wantNames:  []string{"x", "y", "z"},
		},
		{
			name:        "no columns at all",
			content:     `version: 1`,
			wantVersion: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := payload.ParseSchema([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantTarget, s.Target)
			assert.Equal(t, tt.wantVersion, s.Version)

			var names []string
			for _, f := range s.Fields {
				name, _ := f["name"].(string)
				names = append(names, name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestParseSchema_CategoryTokens(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "quoted yaml tokens are kept", content: "- name: code\n  raw_labels: [\"007\", \"1.0\"]\n", want: []string{"007", "1.0"}},
		{name: "json strings are kept", content: `[{"name": "code", "raw_labels": ["007", "1.0"]}]`, want: []string{"007", "1.0"}},
		{name: "unquoted yaml tokens resolve as numbers", content: "- name: code\n  raw_labels: [007, 1.0]\n", want: []string{"7", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := payload.ParseSchema([]byte(tt.content))
			require.NoError(t, err)
			descriptors := feature.NormalizeSchema(s.Fields, "")
			require.Len(t, descriptors, 1)
			assert.Equal(t, tt.want, descriptors[0].Categories)
		})
	}
}

func TestParseSchema_Errors(t *testing.T) {
	for name, content := range map[string]string{
		"empty":            "  \n",
		"scalar root":      "42",
		"columns scalar":   `{"columns": "age,city"}`,
		"double envelope":  `{"data": {"data": {"columns": []}}}`,
		"invalid document": "columns: [unclosed",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := payload.ParseSchema([]byte(content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema:")
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	_, err := payload.Decode(nil)
	assert.ErrorIs(t, err, payload.ErrEmpty)
}

// ---------------------------------------------------------------------------
// ParseModelReport
// ---------------------------------------------------------------------------

const reportJSON = `{
  "task": "regression",
  "target_column": "price",
  "version": 3,
  "user_id": 17,
  "best_model": {"name": "xgboost", "test_metrics": {"r2": 0.93}, "generalization_gap": 0.02},
  "all_models": [
    {"name": "xgboost", "train_metrics": {"rmse": 1200.5, "r2": 0.95}, "test_metrics": {"rmse": 1500, "r2": 0.93}, "generalization_gap": 0.02},
    {"name": "linear", "train_metrics": {"rmse": 3000, "note": "baseline"}},
    {"name": "xgboost"},
    {"metrics": {}},
    "not-a-record"
  ]
}`

func TestParseModelReport(t *testing.T) {
	r, err := payload.ParseModelReport([]byte(reportJSON))
	require.NoError(t, err)

	assert.Equal(t, "regression", r.Task)
	assert.Equal(t, "price", r.TargetColumn)
	assert.Equal(t, "3", r.Version)
	assert.Equal(t, "17", r.UserID)

	require.NotNil(t, r.BestModel)
	assert.Equal(t, "xgboost", r.BestModel.Name)
	require.NotNil(t, r.BestModel.GeneralizationGap)
	assert.InDelta(t, 0.02, *r.BestModel.GeneralizationGap, 1e-9)

	require.Len(t, r.Models, 3)
	assert.Equal(t, map[string]float64{"rmse": 3000}, r.Models[1].TrainMetrics)
	assert.Len(t, r.Records, 4)
	assert.Equal(t, []string{"xgboost", "linear"}, r.ModelNames())
	assert.Equal(t, []string{"r2", "rmse"}, r.MetricNames())

	out, err := r.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "task: regression")
	assert.NotContains(t, string(out), "records")
}

func TestParseModelReport_BestModelAsName(t *testing.T) {
	r, err := payload.ParseModelReport([]byte("best_model: lasso\nall_models: []\n"))
	require.NoError(t, err)
	require.NotNil(t, r.BestModel)
	assert.Equal(t, "lasso", r.BestModel.Name)
	assert.Empty(t, r.ModelNames())
	assert.NotNil(t, r.Models)
}

func TestParseModelReport_Errors(t *testing.T) {
	_, err := payload.ParseModelReport([]byte(`["a"]`))
	require.Error(t, err)

	_, err = payload.ParseModelReport([]byte(`{"all_models": {"name": "x"}}`))
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// ParseDatasetRef / ParseValues
// ---------------------------------------------------------------------------

func TestParseDatasetRef(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{content: `{"datasetId": 12, "id": 99}`, want: "12"},
		{content: `{"dataset_id": "abc-1"}`, want: "abc-1"},
		{content: `{"datasetId": "", "id": 5}`, want: "5"},
		{content: `dataSetId: 8`, want: "8"},
	}
	for _, tt := range tests {
		got, err := payload.ParseDatasetRef([]byte(tt.content))
		require.NoError(t, err, tt.content)
		assert.Equal(t, tt.want, got, tt.content)
	}

	_, err := payload.ParseDatasetRef([]byte(`{"name": "upload.csv"}`))
	assert.Error(t, err)
}

func TestParseValues_ExponentNotation(t *testing.T) {
	store, err := payload.ParseValues([]byte(`{"rooms": 1e3}`))
	require.NoError(t, err)
	assert.Equal(t, 1000.0, predict.Coerce(feature.Numeric, store["rooms"]))
}

func TestParseValues(t *testing.T) {
	store, err := payload.ParseValues([]byte(`{"age": 34, "city": "Paris", "is_active": true, "zip": null, "ratio": 0.5}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"age": "34", "city": "Paris", "is_active": true, "zip": "", "ratio": "0.5"}, store.Raw())

	_, err = payload.ParseValues([]byte(`{"age": [1]}`))
	assert.Error(t, err)
}
