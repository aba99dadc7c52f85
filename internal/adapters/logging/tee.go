package logging

import (
	"context"

	"github.com/rigup/rigup/internal/ports"
)

// TeeLogger forwards every entry to all wrapped loggers. The run uses it
// to both display messages and persist them to the run log.
type TeeLogger struct {
	loggers []ports.Logger
}

// NewTeeLogger creates a TeeLogger over the given loggers.
func NewTeeLogger(loggers ...ports.Logger) *TeeLogger {
	return &TeeLogger{loggers: loggers}
}

// Debug forwards a debug entry.
func (l *TeeLogger) Debug(ctx context.Context, msg string, fields ...ports.Field) {
	for _, logger := range l.loggers {
		logger.Debug(ctx, msg, fields...)
	}
}

// Info forwards an informational entry.
func (l *TeeLogger) Info(ctx context.Context, msg string, fields ...ports.Field) {
	for _, logger := range l.loggers {
		logger.Info(ctx, msg, fields...)
	}
}

// Warn forwards a warning entry.
func (l *TeeLogger) Warn(ctx context.Context, msg string, fields ...ports.Field) {
	for _, logger := range l.loggers {
		logger.Warn(ctx, msg, fields...)
	}
}

// Error forwards an error entry.
func (l *TeeLogger) Error(ctx context.Context, msg string, fields ...ports.Field) {
	for _, logger := range l.loggers {
		logger.Error(ctx, msg, fields...)
	}
}

// With returns a TeeLogger whose children all carry the extra fields.
func (l *TeeLogger) With(fields ...ports.Field) ports.Logger {
	children := make([]ports.Logger, len(l.loggers))
	for i, logger := range l.loggers {
		children[i] = logger.With(fields...)
	}
	return &TeeLogger{loggers: children}
}

var _ ports.Logger = (*TeeLogger)(nil)
