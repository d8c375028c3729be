// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/predictdash/predict-mcp/internal/payload"
)

func newReportCmd(_ *app) *cobra.Command {
	var flags struct {
		report string
		output string
	}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize a model report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := readInput(flags.report, "model report")
			if err != nil {
				return err
			}
			r, err := payload.ParseModelReport(content)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch flags.output {
			case "json":
				return writeJSON(out, r)
			case "yaml":
				b, err := r.YAML()
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				_, err = out.Write(b)
				return err
			}
			return fmt.Errorf("unknown output format %q (want yaml or json)", flags.output)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.report, "report", "", "Model report document (required)")
	f.StringVarP(&flags.output, "output", "o", "yaml", "Output format: yaml or json")
	_ = cmd.MarkFlagRequired("report")
	return cmd
}
