package pricemap

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pricemap-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(key float64, idx uint32, err error) {
	if err != nil {
		l.Error("insert failed",
			"key", key,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"key", key,
			"slot", idx,
		)
	}
}

// LogErase logs an erase operation.
func (l *Logger) LogErase(key float64, removed bool) {
	l.Debug("erase completed",
		"key", key,
		"removed", removed,
	)
}

// LogGrow logs a segment allocation.
func (l *Logger) LogGrow(segments, capacity int) {
	l.Debug("store grown",
		"segments", segments,
		"capacity", capacity,
	)
}

// LogClear logs a clear operation.
func (l *Logger) LogClear(released int) {
	l.Debug("map cleared",
		"released", released,
	)
}
