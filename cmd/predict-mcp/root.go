// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/predictdash/predict-mcp/internal/config"
	"github.com/predictdash/predict-mcp/internal/logging"
)

// app carries the settings resolved by the root command to its subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "predict-mcp",
		Short: "Build validated prediction requests from dataset schemas",
		Long: "predict-mcp normalizes dataset schemas into typed features, keeps entered\n" +
			"values and the model choice consistent, and builds prediction requests.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	f.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	f.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newNormalizeCmd(a))
	root.AddCommand(newPredictCmd(a))
	root.AddCommand(newReportCmd(a))
	return root
}

// setup loads the config and initializes logging. Flags override the file
// and the environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, nil)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	if err := logging.Init(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: cmd.ErrOrStderr(),
	}); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg
	return nil
}
