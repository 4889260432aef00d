package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog for consistent logging across the application
type Logger struct {
	*slog.Logger
}

// New creates a new JSON logger instance writing to stdout
func New() *Logger {
	return NewWithOptions(os.Stdout, "json", slog.LevelInfo)
}

// NewWithOptions creates a logger with the given writer, format ("json" or "text") and level
func NewWithOptions(w io.Writer, format string, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// ParseLevel maps a level name to slog.Level, defaulting to info
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithField returns a logger with a pre-set field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Logger: l.With(key, value),
	}
}

// WithFields returns a logger with multiple pre-set fields
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{
		Logger: l.With(args...),
	}
}

// SetDefault installs the logger as the process-wide slog default
func (l *Logger) SetDefault() {
	slog.SetDefault(l.Logger)
}
