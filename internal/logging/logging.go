// SPDX-License-Identifier: Apache-2.0

// Package logging installs the process-wide slog logger. Core packages do not
// log; the tool and CLI layers take component loggers from New.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format names a log encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("log format must be text or json, got %q", s)
}

// ParseLevel maps debug/info/warn/error, in any case, to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// Options are the unparsed logging settings as they come from config.
type Options struct {
	Level  string
	Format string
	// Writer defaults to os.Stderr; stdout belongs to the MCP stream.
	Writer io.Writer
}

// Init validates opts and replaces the slog default. On error the current
// default is left in place.
func Init(opts Options) error {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	format, err := ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	ho := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(w, ho)
	if format == FormatJSON {
		h = slog.NewJSONHandler(w, ho)
	}
	slog.SetDefault(slog.New(h))
	return nil
}

// New tags the current default logger with component. Loggers obtained
// before Init keep the handler that was installed at the time.
func New(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
