package dynvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dynvec-specific context.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
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

// WithLen adds a length field to the logger.
func (l *Logger) WithLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("len", n),
	}
}

// WithCap adds a capacity field to the logger.
func (l *Logger) WithCap(c int) *Logger {
	return &Logger{
		Logger: l.Logger.With("cap", c),
	}
}

// LogAlloc logs a raw storage allocation.
func (l *Logger) LogAlloc(capacity int, offHeap bool) {
	l.Debug("buffer allocated",
		"capacity", capacity,
		"off_heap", offHeap,
	)
}

// LogGrow logs a capacity change after reallocation.
func (l *Logger) LogGrow(oldCap, newCap, length int) {
	l.Debug("capacity grown",
		"old_cap", oldCap,
		"new_cap", newCap,
		"len", length,
	)
}

// LogRelocation logs an element transfer between buffers.
func (l *Logger) LogRelocation(count int, moved bool) {
	l.Debug("elements relocated",
		"count", count,
		"moved", moved,
	)
}
