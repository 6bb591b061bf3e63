package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewColorHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestHandlerColorsByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewColorHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.Error("boom")
	assert.Contains(t, buf.String(), colorRed)

	buf.Reset()
	log.Warn("careful")
	assert.Contains(t, buf.String(), colorYellow)

	buf.Reset()
	log.Info("persisting graph nodes")
	assert.Contains(t, buf.String(), colorGreen)
}

func TestHandlerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewColorHandler(&buf, nil))

	log.Info("scan complete", "location", "station", "events", 12)

	out := buf.String()
	assert.Contains(t, out, "location=station")
	assert.Contains(t, out, "events=12")
}

func TestWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	handler := NewColorHandler(&buf, nil)
	log := slog.New(handler).With("run_id", "abc").WithGroup("pipeline")

	log.Info("started", "stage", "detect")

	out := buf.String()
	assert.Contains(t, out, "run_id=abc")
	assert.Contains(t, out, "pipeline.stage=detect")

	// The original handler is unchanged.
	require.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.Empty(t, handler.attrs)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), strings.ToLower(tt.in))
	}
}
