// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_HasComponent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "debug", Format: "text", Writer: &buf}))

	New("normalize").Info("hello")

	assert.Contains(t, buf.String(), "component=normalize")
	assert.Contains(t, buf.String(), "hello")
}

func TestInit_JSONFormat(t *testing.T) {
	for _, format := range []string{"json", "JSON", " Json "} {
		var buf bytes.Buffer
		require.NoError(t, Init(Options{Level: "info", Format: format, Writer: &buf}))

		New("tool").Info("json check")

		assert.Contains(t, buf.String(), `"level":"INFO"`, "format=%q", format)
		assert.Contains(t, buf.String(), `"component":"tool"`, "format=%q", format)
	}
}

func TestInit_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "WARN", Format: "text", Writer: &buf}))

	logger := New("gate")
	logger.Info("should be suppressed")
	logger.Warn("should appear")

	assert.NotContains(t, buf.String(), "should be suppressed")
	assert.Contains(t, buf.String(), "should appear")
}

func TestInit_RejectsBadOptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "info", Format: "text", Writer: &buf}))

	assert.Error(t, Init(Options{Level: "loud", Format: "text"}))
	assert.Error(t, Init(Options{Level: "info", Format: "xml"}))

	New("kept").Info("still here")
	assert.Contains(t, buf.String(), "still here")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
