// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/predictdash/predict-mcp/internal/logging"
	"github.com/predictdash/predict-mcp/internal/tool"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Long: `Starts an MCP server over stdin/stdout exposing normalize_schema,
reconcile_values, resolve_model_selection and build_prediction_request.
Logs go to stderr so they never mix with the protocol stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ts, err := tool.NewToolset(a.cfg.StrictContract)
			if err != nil {
				return err
			}
			srv := tool.NewServer(version, ts)
			logging.New("mcp").Info("starting predict-mcp server over stdio", "version", version, "strict_contract", a.cfg.StrictContract)
			return srv.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
