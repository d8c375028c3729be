// SPDX-License-Identifier: Apache-2.0

package predict

import "fmt"

// FailureKind identifies which precondition of a prediction request failed.
type FailureKind string

const (
	MissingDataset      FailureKind = "missing_dataset"
	InvalidDataset      FailureKind = "invalid_dataset"
	MissingModel        FailureKind = "missing_model"
	MissingVersion      FailureKind = "missing_version"
	InvalidVersion      FailureKind = "invalid_version"
	MissingFeatureValue FailureKind = "missing_feature_value"
)

// ValidationError is the first unmet condition found while building a
// request. Label is set only for MissingFeatureValue.
type ValidationError struct {
	Kind  FailureKind
	Label string
}

// Sentinels for errors.Is; they match any ValidationError of the same kind.
var (
	ErrMissingDataset      = &ValidationError{Kind: MissingDataset}
	ErrInvalidDataset      = &ValidationError{Kind: InvalidDataset}
	ErrMissingModel        = &ValidationError{Kind: MissingModel}
	ErrMissingVersion      = &ValidationError{Kind: MissingVersion}
	ErrInvalidVersion      = &ValidationError{Kind: InvalidVersion}
	ErrMissingFeatureValue = &ValidationError{Kind: MissingFeatureValue}
)

func (e *ValidationError) Error() string {
	return "predict: " + e.Message()
}

// Message is the user-facing description of the failure.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case MissingDataset:
		return "load a dataset first"
	case InvalidDataset:
		return "dataset id must be an integer"
	case MissingModel:
		return "select a model"
	case MissingVersion:
		return "dataset version unavailable from schema"
	case InvalidVersion:
		return "dataset version must be an integer"
	case MissingFeatureValue:
		return fmt.Sprintf("please provide a value for %s", e.Label)
	}
	return string(e.Kind)
}

// Is matches on Kind so callers can test against the sentinels.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}
