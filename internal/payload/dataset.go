// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"fmt"

	"github.com/predictdash/predict-mcp/internal/feature"
)

var datasetKeys = feature.Aliases{Keys: []string{"datasetId", "dataset_id", "id", "dataSetId"}}

// ParseDatasetRef extracts the dataset id from a cached upload response.
func ParseDatasetRef(content []byte) (string, error) {
	root, err := decodeRecord(content, "dataset response")
	if err != nil {
		return "", err
	}
	id, ok := datasetKeys.Text(root)
	if !ok {
		return "", fmt.Errorf("dataset response: no dataset id found")
	}
	return id, nil
}

// ParseValues decodes saved form values keyed by feature name.
func ParseValues(content []byte) (feature.ValueStore, error) {
	root, err := decodeRecord(content, "values")
	if err != nil {
		return nil, err
	}
	store := make(feature.ValueStore, len(root))
	for k, v := range root {
		switch v.(type) {
		case nil, bool, string, int, int64, uint64, float64:
			store[k] = feature.ValueOf(v)
		default:
			return nil, fmt.Errorf("values: %q holds a %T, want a scalar", k, v)
		}
	}
	return store, nil
}
