package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	l := slog.New(h)
	return NewSlogLogger(l), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "blur check", "field", "username")
	log.Info(ctx, "user registered", "id", "user_1")
	log.Warn(ctx, "stored blob is corrupt", "key", "radian")
	log.Error(ctx, "initial load failed", "backend", "redis")

	out := buf.String()

	tests := []struct {
		level string
		attr  string
	}{
		{"DEBUG", "field=username"},
		{"INFO", "id=user_1"},
		{"WARN", "key=radian"},
		{"ERROR", "backend=redis"},
	}

	for _, tc := range tests {
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, tc.attr)
	}
	assert.Contains(t, out, `msg="user registered"`)
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	triage := log.With("module", "triage")
	triage.Info(context.Background(), "board submitted", "removed", 2)

	out := buf.String()
	for _, s := range []string{"level=INFO", `msg="board submitted"`, "module=triage", "removed=2"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestSlogLogger_ContextDoesNotPanic(t *testing.T) {
	log, _ := newTestLogger(t)

	ctx := context.TODO()
	log.Info(ctx, "ctx-ok")
	log.Debug(ctx, "ctx-ok")
	log.Warn(ctx, "ctx-ok")
	log.Error(ctx, "ctx-ok")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_JSONFormatAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", "json", &buf)

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown", "id", "user_1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"id":"user_1"`)
}

func TestNewNop_Discards(t *testing.T) {
	log := NewNop()
	log.Error(context.Background(), "nothing to see")
	log.With("k", "v").Info(context.Background(), "still nothing")
}
