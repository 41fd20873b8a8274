// Package logging configures the process-wide slog logger.
package logging

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

// Setup installs a JSON slog default tagged with the component name
// ("api", "migrate"). Level comes from LOG_LEVEL (DEBUG, INFO, WARN,
// ERROR), defaulting to INFO. ERROR and above carry a stack trace.
func Setup(component string) {
	opts := &slog.HandlerOptions{
		Level:     levelFromEnv(os.Getenv("LOG_LEVEL")),
		AddSource: true,
	}
	logger := slog.New(&errStackHandler{Handler: slog.NewJSONHandler(os.Stdout, opts)})
	if component != "" {
		logger = logger.With("component", component)
	}
	slog.SetDefault(logger)
}

func levelFromEnv(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Fatal logs at Error level and exits with code 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

const stackBufSize = 4096

// errStackHandler attaches the current goroutine's stack to ERROR+ records.
type errStackHandler struct {
	slog.Handler
}

func (h *errStackHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		buf := make([]byte, stackBufSize)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stacktrace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *errStackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errStackHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *errStackHandler) WithGroup(name string) slog.Handler {
	return &errStackHandler{Handler: h.Handler.WithGroup(name)}
}
