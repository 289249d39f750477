package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink unavailable")
}

func TestMultiHandler_DispatchesToAll(t *testing.T) {
	var first, second bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&first, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&second, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	slog.New(h).With("user.id", 7).Info("user registered", "email", "a@b.co")

	for _, out := range []string{first.String(), second.String()} {
		assert.Contains(t, out, "msg=\"user registered\"")
		assert.Contains(t, out, "user.id=7")
		assert.Contains(t, out, "email=a@b.co")
	}
}

func TestMultiHandler_RespectsLevels(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	l := slog.New(h)

	l.Debug("lookup")
	l.Error("boom")

	assert.Contains(t, debugBuf.String(), "msg=lookup")
	assert.Contains(t, debugBuf.String(), "msg=boom")
	assert.NotContains(t, errorBuf.String(), "msg=lookup")
	assert.Contains(t, errorBuf.String(), "msg=boom")
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestMultiHandler_ContinuesAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(failingHandler{}, slog.NewTextHandler(&buf, nil))

	err := h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "hello", 0))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestMultiHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, nil))

	slog.New(h).WithGroup("req").Info("done", "status", 201)

	assert.Contains(t, buf.String(), "req.status=201")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) got = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewConsoleHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewConsoleHandler(&buf, Options{Level: "info", Format: "json"})).Info("ready")

	out := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(out, "{"), "expected JSON output, got %s", out)
	assert.Contains(t, out, `"msg":"ready"`)
}
