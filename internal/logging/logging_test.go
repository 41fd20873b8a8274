package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLevelFromEnv(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{" info ", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := levelFromEnv(tc.in); got != tc.want {
			t.Errorf("levelFromEnv(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestErrStackHandler_AddsStackOnError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&errStackHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	logger.ErrorContext(context.Background(), "boom")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	stack, ok := record["stacktrace"].(string)
	if !ok || stack == "" {
		t.Error("expected a stacktrace attr on ERROR records")
	}
}

func TestErrStackHandler_NoStackBelowError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&errStackHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	logger.InfoContext(context.Background(), "fine")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if _, ok := record["stacktrace"]; ok {
		t.Error("expected no stacktrace attr on INFO records")
	}
}
