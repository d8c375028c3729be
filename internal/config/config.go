// SPDX-License-Identifier: Apache-2.0

// Package config loads predict-mcp settings from defaults, an optional YAML
// file and the environment, in that order of precedence (last wins).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/predictdash/predict-mcp/internal/logging"
)

// Environment variable names.
const (
	EnvLogLevel       = "PREDICT_MCP_LOG_LEVEL"
	EnvLogFormat      = "PREDICT_MCP_LOG_FORMAT"
	EnvStrictContract = "PREDICT_MCP_STRICT_CONTRACT"
)

// Config holds process settings.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	// StrictContract makes a request that fails the CUE contract an error
	// instead of a logged warning.
	StrictContract bool `yaml:"strict_contract"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{LogLevel: "info", LogFormat: "text", StrictContract: true}
}

// Load builds a Config from defaults, then path (if non-empty), then the
// environment looked up through getenv (os.Getenv when nil).
func Load(path string, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.UnmarshalWithOptions(b, &cfg, yaml.DisallowUnknownField()); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := getenv(EnvStrictContract); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvStrictContract, err)
		}
		cfg.StrictContract = b
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.canonical(), nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// canonical returns c with the log settings in their lower-case spelling.
func (c Config) canonical() Config {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	return c
}
