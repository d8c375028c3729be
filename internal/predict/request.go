// SPDX-License-Identifier: Apache-2.0

// Package predict builds typed prediction requests from entered form values.
package predict

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/predictdash/predict-mcp/internal/feature"
)

// Request is a fully validated prediction request.
type Request struct {
	DatasetID int64  `json:"datasetId"`
	Version   int64  `json:"version"`
	ModelName string `json:"model_Name"`
	// Features values are float64, bool or string depending on the
	// feature's value kind.
	Features map[string]any `json:"features"`
}

// MarshalJSON encodes non-finite numbers as null so that an unparsable
// numeric entry reaches the backend and is rejected there.
func (r Request) MarshalJSON() ([]byte, error) {
	features := make(map[string]any, len(r.Features))
	for k, v := range r.Features {
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			features[k] = nil
			continue
		}
		features[k] = v
	}
	type wire Request
	w := wire(r)
	w.Features = features
	return json.Marshal(w)
}

// BuildRequest validates the inputs and converts entered values to their
// typed form. Conditions are checked in order and the first unmet one is
// returned as a *ValidationError; no partial request is ever returned.
func BuildRequest(store feature.ValueStore, descriptors []feature.Descriptor, modelName, datasetID, version string) (Request, error) {
	datasetID = strings.TrimSpace(datasetID)
	if datasetID == "" {
		return Request{}, &ValidationError{Kind: MissingDataset}
	}
	id, ok := parseInteger(datasetID)
	if !ok {
		return Request{}, &ValidationError{Kind: InvalidDataset}
	}
	if strings.TrimSpace(modelName) == "" {
		return Request{}, &ValidationError{Kind: MissingModel}
	}
	version = strings.TrimSpace(version)
	if version == "" {
		return Request{}, &ValidationError{Kind: MissingVersion}
	}
	ver, ok := parseInteger(version)
	if !ok {
		return Request{}, &ValidationError{Kind: InvalidVersion}
	}
	for _, d := range descriptors {
		if store[d.Name].IsEmpty() {
			return Request{}, &ValidationError{Kind: MissingFeatureValue, Label: d.Label}
		}
	}

	features := make(map[string]any, len(descriptors))
	for _, d := range descriptors {
		features[d.Name] = Coerce(d.Kind, store[d.Name])
	}
	return Request{
		DatasetID: id,
		Version:   ver,
		ModelName: modelName,
		Features:  features,
	}, nil
}

// Coerce converts one entered value according to the feature's kind.
// Numeric values that do not parse become NaN rather than an error.
func Coerce(kind feature.ValueKind, v feature.Value) any {
	switch kind {
	case feature.Boolean:
		if b, ok := v.Bool(); ok {
			return b
		}
		return v.String() == "true"
	case feature.Numeric:
		if b, ok := v.Bool(); ok {
			if b {
				return 1.0
			}
			return 0.0
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return v.String()
}

// parseInteger accepts integral numbers in plain or float notation ("3", "3.0").
func parseInteger(s string) (int64, bool) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
