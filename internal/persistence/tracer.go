package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewQueryTracer logs pgx activity through zap. Statements are traced at
// debug level so they only appear with LOG_LEVEL=debug.
func NewQueryTracer(logger *zap.Logger) *tracelog.TraceLog {
	level := tracelog.LogLevelWarn
	if logger.Core().Enabled(zapcore.DebugLevel) {
		level = tracelog.LogLevelDebug
	}
	return &tracelog.TraceLog{
		Logger:   queryLogger{logger: logger.Named("pgx")},
		LogLevel: level,
	}
}

type queryLogger struct {
	logger *zap.Logger
}

// Log drops bound arguments; they carry password hashes and resume text.
func (l queryLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	fields := make([]zap.Field, 0, len(data))
	for key, value := range data {
		if key == "args" {
			continue
		}
		fields = append(fields, zap.Any(key, value))
	}

	switch level {
	case tracelog.LogLevelError:
		l.logger.Error(msg, fields...)
	case tracelog.LogLevelWarn:
		l.logger.Warn(msg, fields...)
	case tracelog.LogLevelInfo:
		l.logger.Info(msg, fields...)
	default:
		l.logger.Debug(msg, fields...)
	}
}
