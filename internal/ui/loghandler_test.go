package ui_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/costgraph/internal/ui"
)

func TestMultiHandler_TextAndJSON(t *testing.T) {
	t.Parallel()

	var text, js bytes.Buffer
	logger := slog.New(ui.NewMultiHandler(
		slog.NewTextHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&js, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))

	logger.Debug("series loaded", "points", 12)
	logger.Warn("skipping line", "line", 3)

	assert.NotContains(t, text.String(), "series loaded")
	assert.Contains(t, text.String(), "line=3")

	lines := strings.Split(strings.TrimSpace(js.String()), "\n")
	require.Len(t, lines, 2)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "series loaded", rec["msg"])
	assert.InDelta(t, 12.0, rec["points"], 0)
}

func TestMultiHandler_Enabled(t *testing.T) {
	t.Parallel()

	m := ui.NewMultiHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	ctx := context.Background()
	assert.True(t, m.Enabled(ctx, slog.LevelWarn))
	assert.True(t, m.Enabled(ctx, slog.LevelError))
	assert.False(t, m.Enabled(ctx, slog.LevelInfo))
}

func TestMultiHandler_AttrsAndGroups(t *testing.T) {
	t.Parallel()

	var text, js bytes.Buffer
	m := ui.NewMultiHandler(
		slog.NewTextHandler(&text, nil),
		slog.NewJSONHandler(&js, nil),
	)
	logger := slog.New(m.WithAttrs([]slog.Attr{slog.String("component", "chart")}).WithGroup("render"))
	logger.Info("drawn", "mode", "bar")

	assert.Contains(t, text.String(), "component=chart")
	assert.Contains(t, text.String(), "render.mode=bar")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(js.Bytes()), &rec))
	group, ok := rec["render"].(map[string]any)
	require.True(t, ok, "expected render group in JSON output")
	assert.Equal(t, "bar", group["mode"])
}

type failingHandler struct {
	slog.Handler
}

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("disk full")
}

func TestMultiHandler_JoinsErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ok := slog.NewTextHandler(&buf, nil)
	bad := failingHandler{Handler: slog.NewTextHandler(&bytes.Buffer{}, nil)}
	m := ui.NewMultiHandler(ok, bad)

	rec := slog.NewRecord(time.Time{}, slog.LevelInfo, "drawn", 0)
	err := m.Handle(context.Background(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, buf.String(), "drawn")
}
