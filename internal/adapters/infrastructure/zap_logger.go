package infrastructure

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"weatherdash.app/internal/ports"
)

// ZapLoggerAdapter implements the Logger port using zap
type ZapLoggerAdapter struct {
	logger *zap.Logger
}

// NewZapLoggerAdapter builds a JSON zap logger writing to w at the named level
func NewZapLoggerAdapter(w io.Writer, level string) *ZapLoggerAdapter {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapLevel(level),
	)

	return NewZapLoggerAdapterFromCore(core)
}

func NewZapLoggerAdapterFromCore(core zapcore.Core) *ZapLoggerAdapter {
	return &ZapLoggerAdapter{logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
}

func (l *ZapLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.logger.Debug(msg, zapFields(fields)...)
}

func (l *ZapLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.logger.Info(msg, zapFields(fields)...)
}

func (l *ZapLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.logger.Warn(msg, zapFields(fields)...)
}

func (l *ZapLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.logger.Error(msg, zapFields(fields)...)
}

// Sync flushes buffered entries
func (l *ZapLoggerAdapter) Sync() error {
	return l.logger.Sync()
}

func zapFields(fields []ports.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			out = append(out, zap.NamedError(field.Key, err))
			continue
		}
		out = append(out, zap.Any(field.Key, field.Value))
	}
	return out
}

func zapLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
