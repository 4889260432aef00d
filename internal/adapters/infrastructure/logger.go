package infrastructure

import (
	"context"
	"log/slog"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/logger"
)

// SlogLoggerAdapter implements the Logger port using slog
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter wraps the given logger, or the slog default when nil
func NewSlogLoggerAdapter(l *logger.Logger) *SlogLoggerAdapter {
	if l == nil {
		return &SlogLoggerAdapter{logger: slog.Default()}
	}
	return &SlogLoggerAdapter{logger: l.Logger}
}

func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.log(slog.LevelDebug, msg, fields)
}

func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.log(slog.LevelInfo, msg, fields)
}

func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.log(slog.LevelWarn, msg, fields)
}

func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.log(slog.LevelError, msg, fields)
}

func (l *SlogLoggerAdapter) log(level slog.Level, msg string, fields []ports.Field) {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		args = append(args, field.Key, field.Value)
	}
	l.logger.Log(context.Background(), level, msg, args...)
}
