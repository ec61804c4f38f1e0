package embedgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with embedgo-specific context.
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

// LogProgress logs a periodic progress report during a table load.
func (l *Logger) LogProgress(lines, keys int) {
	l.Info("loading embeddings",
		"lines", lines,
		"keys", keys,
	)
}

// LogDuplicate logs a duplicate-key warning.
func (l *Logger) LogDuplicate(key string, line int) {
	l.Warn("duplicate key",
		"key", key,
		"line", line,
	)
}

// LogLoad logs the summary of a completed table load.
func (l *Logger) LogLoad(dimension int, stats LoadStats) {
	l.Info("load completed",
		"dimension", dimension,
		"lines", stats.Lines,
		"keys", stats.Keys,
		"recoded", stats.Recoded,
		"duplicates", stats.Duplicates,
	)
}

// LogSearch logs a completed k-NN search.
func (l *Logger) LogSearch(key string, k, results int) {
	l.Debug("search completed",
		"key", key,
		"k", k,
		"results", results,
	)
}
