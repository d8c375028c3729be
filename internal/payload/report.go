// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/predictdash/predict-mcp/internal/feature"
	"github.com/predictdash/predict-mcp/internal/selection"
)

// ModelSummary is the evaluation summary of one trained model.
type ModelSummary struct {
	Name              string             `json:"name" yaml:"name"`
	TrainMetrics      map[string]float64 `json:"train_metrics,omitempty" yaml:"train_metrics,omitempty"`
	TestMetrics       map[string]float64 `json:"test_metrics,omitempty" yaml:"test_metrics,omitempty"`
	GeneralizationGap *float64           `json:"generalization_gap,omitempty" yaml:"generalization_gap,omitempty"`
}

// Report is a decoded model report.
type Report struct {
	Task         string         `json:"task,omitempty" yaml:"task,omitempty"`
	TargetColumn string         `json:"target_column,omitempty" yaml:"target_column,omitempty"`
	Version      string         `json:"version,omitempty" yaml:"version,omitempty"`
	UserID       string         `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	BestModel    *ModelSummary  `json:"best_model,omitempty" yaml:"best_model,omitempty"`
	Models       []ModelSummary `json:"models" yaml:"models"`
	Markdown     string         `json:"report_markdown,omitempty" yaml:"report_markdown,omitempty"`

	// Records holds every all_models entry as decoded, for model selection.
	Records []selection.RawModel `json:"-" yaml:"-"`
}

var (
	taskKeys     = feature.Aliases{Keys: []string{"task"}}
	userKeys     = feature.Aliases{Keys: []string{"user_id", "userId"}}
	bestKeys     = feature.Aliases{Keys: []string{"best_model", "bestModel"}}
	modelsKeys   = feature.Aliases{Keys: []string{"all_models", "allModels", "models"}}
	markdownKeys = feature.Aliases{Keys: []string{"report_markdown"}}
	nameKeys     = feature.Aliases{Keys: []string{"name", "model_name", "modelName"}}
)

// ParseModelReport decodes a model report document.
func ParseModelReport(content []byte) (Report, error) {
	root, err := decodeRecord(content, "model report")
	if err != nil {
		return Report{}, err
	}

	r := Report{Models: []ModelSummary{}}
	r.Task, _ = taskKeys.Text(root)
	r.TargetColumn, _ = targetKeys.Text(root)
	r.Version, _ = versionKeys.Text(root)
	r.UserID, _ = userKeys.Text(root)
	r.Markdown, _ = markdownKeys.Str(root)

	if v, ok := modelsKeys.Lookup(root); ok {
		list, ok := v.([]any)
		if !ok {
			return Report{}, fmt.Errorf("model report: all_models has unsupported type %T", v)
		}
		for _, item := range list {
			m, ok := record(item)
			if !ok {
				continue
			}
			r.Records = append(r.Records, selection.RawModel(m))
			if s, ok := summarize(m); ok {
				r.Models = append(r.Models, s)
			}
		}
	}

	if v, ok := bestKeys.Lookup(root); ok {
		if name, isName := v.(string); isName && name != "" {
			r.BestModel = &ModelSummary{Name: name}
		} else if m, isRecord := record(v); isRecord {
			if s, ok := summarize(m); ok {
				r.BestModel = &s
			}
		}
	}
	return r, nil
}

// ModelNames returns the selectable model names in report order.
func (r Report) ModelNames() []string {
	return selection.ModelNames(r.Records)
}

func summarize(m map[string]any) (ModelSummary, bool) {
	name, ok := nameKeys.Str(m)
	if !ok {
		return ModelSummary{}, false
	}
	s := ModelSummary{
		Name:         name,
		TrainMetrics: metrics(m["train_metrics"]),
		TestMetrics:  metrics(m["test_metrics"]),
	}
	if gap, ok := number(m["generalization_gap"]); ok {
		s.GeneralizationGap = &gap
	}
	return s, true
}

// metrics keeps the numeric entries of a metrics mapping.
func metrics(v any) map[string]float64 {
	m, ok := record(v)
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, raw := range m {
		if f, ok := number(raw); ok {
			out[k] = f
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}

// MetricNames returns the sorted union of metric names across all models.
func (r Report) MetricNames() []string {
	seen := map[string]struct{}{}
	for _, m := range r.Models {
		for k := range m.TrainMetrics {
			seen[k] = struct{}{}
		}
		for k := range m.TestMetrics {
			seen[k] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// YAML renders the report summary.
func (r Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
