package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Leveler
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	log := NewFromEnv()
	if _, ok := log.(*slogger); !ok {
		t.Fatalf("NewFromEnv returned %T, want *slogger", log)
	}
}

func TestEnsureRequestIDIsStable(t *testing.T) {
	ctx, id := EnsureRequestID(context.Background())
	if id == "" {
		t.Fatal("EnsureRequestID returned an empty ID")
	}

	ctx2, id2 := EnsureRequestID(ctx)
	if id2 != id {
		t.Errorf("second EnsureRequestID = %q, want the existing %q", id2, id)
	}
	if got := RequestIDFromContext(ctx2); got != id {
		t.Errorf("RequestIDFromContext = %q, want %q", got, id)
	}
}

func TestWithRequestLoggerNilBase(t *testing.T) {
	ctx, log := WithRequestLogger(context.Background(), nil)
	if log == nil {
		t.Fatal("WithRequestLogger returned a nil logger")
	}
	if RequestIDFromContext(ctx) == "" {
		t.Error("WithRequestLogger did not attach a request ID")
	}
	log.Info(ctx, "noop path must not panic")
}
