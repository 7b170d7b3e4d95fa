// Package logger provides the structured logger shared by the catalog
// services, repositories and HTTP layer.
package logger

import (
	"log/slog"
	"os"
)

// Logger wraps slog and adds a fatal-exit helper for startup wiring.
type Logger struct {
	*slog.Logger
}

// New creates a Logger emitting text records to stdout. The level comes
// straight from configuration; zero is Info, negative values enable Debug.
func New(level int) *Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(level),
	})

	return &Logger{Logger: slog.New(handler)}
}

// Fatal logs at Error level and terminates the process.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
