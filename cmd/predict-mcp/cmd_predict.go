// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/predictdash/predict-mcp/internal/feature"
	"github.com/predictdash/predict-mcp/internal/logging"
	"github.com/predictdash/predict-mcp/internal/payload"
	"github.com/predictdash/predict-mcp/internal/predict"
	"github.com/predictdash/predict-mcp/internal/selection"
)

type predictFlags struct {
	schema          string
	report          string
	values          string
	model           string
	datasetID       string
	datasetResponse string
}

// predictInputs are the decoded documents a prediction is built from.
type predictInputs struct {
	schema    payload.Schema
	report    payload.Report
	values    feature.ValueStore
	datasetID string
}

func newPredictCmd(a *app) *cobra.Command {
	var flags predictFlags
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Validate entered values and print the prediction request",
		Long: `Loads the schema and model report, aligns the saved values with the
schema's features, resolves the model and prints the prediction request as
JSON. The first unmet condition is reported as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := loadPredictInputs(cmd.Context(), flags)
			if err != nil {
				return err
			}
			req, err := buildPrediction(in, flags.model, a.cfg.StrictContract)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), req)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.schema, "schema", "", "Schema document, JSON or YAML (required)")
	f.StringVar(&flags.report, "report", "", "Model report document (required)")
	f.StringVar(&flags.values, "values", "", "Saved form values keyed by feature name")
	f.StringVar(&flags.model, "model", "", "Model name (default: first model of the report)")
	f.StringVar(&flags.datasetID, "dataset-id", "", "Dataset id")
	f.StringVar(&flags.datasetResponse, "dataset-response", "", "Cached upload response carrying the dataset id")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("report")
	cmd.MarkFlagsMutuallyExclusive("dataset-id", "dataset-response")
	return cmd
}

// loadPredictInputs reads and decodes every input document concurrently.
func loadPredictInputs(ctx context.Context, flags predictFlags) (predictInputs, error) {
	in := predictInputs{values: feature.ValueStore{}, datasetID: flags.datasetID}
	g, ctx := errgroup.WithContext(ctx)

	load := func(path, what string, decode func([]byte) error) {
		if path == "" {
			return
		}
		g.Go(func() error {
			b, err := readInput(path, what)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			return decode(b)
		})
	}

	load(flags.schema, "schema", func(b []byte) (err error) {
		in.schema, err = payload.ParseSchema(b)
		return err
	})
	load(flags.report, "model report", func(b []byte) (err error) {
		in.report, err = payload.ParseModelReport(b)
		return err
	})
	load(flags.values, "values", func(b []byte) (err error) {
		in.values, err = payload.ParseValues(b)
		return err
	})
	load(flags.datasetResponse, "dataset response", func(b []byte) (err error) {
		in.datasetID, err = payload.ParseDatasetRef(b)
		return err
	})

	if err := g.Wait(); err != nil {
		return predictInputs{}, err
	}
	return in, nil
}

// buildPrediction runs the form pipeline over decoded inputs: normalize,
// reconcile, resolve the model, build and check the request.
func buildPrediction(in predictInputs, model string, strict bool) (predict.Request, error) {
	log := logging.New("predict")

	descriptors := feature.NormalizeSchema(in.schema.Fields, in.schema.Target)
	values := feature.Reconcile(descriptors, in.values)
	for name := range in.values {
		if _, ok := values[name]; !ok {
			log.Debug("dropping value of unknown feature", "feature", name)
		}
	}

	sel := selection.ResolveModels(in.report.Records, model)
	if model != "" && sel.Current != model {
		log.Warn("requested model not in report, using fallback", "requested", model, "model", sel.Current)
	}

	req, err := predict.BuildRequest(values, descriptors, sel.Current, in.datasetID, in.schema.Version)
	if err != nil {
		var verr *predict.ValidationError
		if errors.As(err, &verr) {
			log.Info("prediction request rejected", "kind", verr.Kind, "label", verr.Label)
		}
		return predict.Request{}, err
	}

	contract, err := predict.NewContract()
	if err != nil {
		return predict.Request{}, err
	}
	if err := contract.Check(req); err != nil {
		if strict {
			return predict.Request{}, err
		}
		log.Warn("prediction request violates contract", "error", err)
	}
	return req, nil
}
