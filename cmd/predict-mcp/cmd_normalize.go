// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/predictdash/predict-mcp/internal/feature"
	"github.com/predictdash/predict-mcp/internal/logging"
	"github.com/predictdash/predict-mcp/internal/payload"
)

type normalizeOutput struct {
	TargetColumn  string               `json:"target_column"`
	Version       string               `json:"version"`
	Features      []feature.Descriptor `json:"features"`
	Excluded      []excludedField      `json:"excluded"`
	Uncategorized []string             `json:"uncategorized"`
}

type excludedField struct {
	Index  int    `json:"index"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

func newNormalizeCmd(_ *app) *cobra.Command {
	var flags struct {
		schema string
		target string
	}
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the feature descriptors of a schema document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := readInput(flags.schema, "schema")
			if err != nil {
				return err
			}
			schema, err := payload.ParseSchema(content)
			if err != nil {
				return err
			}
			target := flags.target
			if target == "" {
				target = schema.Target
			}
			res := feature.Normalize(schema.Fields, target)

			log := logging.New("normalize")
			out := normalizeOutput{
				TargetColumn:  target,
				Version:       schema.Version,
				Features:      res.Descriptors,
				Excluded:      make([]excludedField, 0, len(res.Excluded)),
				Uncategorized: res.Uncategorized,
			}
			for _, e := range res.Excluded {
				log.Debug("schema field excluded", "index", e.Index, "name", e.Name, "reason", e.Reason.String())
				out.Excluded = append(out.Excluded, excludedField{Index: e.Index, Name: e.Name, Reason: e.Reason.String()})
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.schema, "schema", "", "Schema document, JSON or YAML (required)")
	f.StringVar(&flags.target, "target", "", "Target column to exclude (default: from the document)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
