// Package logging provides the console and run-log logger adapters.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rigup/rigup/internal/ports"
)

// ConsoleLogger writes human-readable log lines to a writer.
type ConsoleLogger struct {
	mu          sync.Mutex
	out         io.Writer
	level       ports.Level
	fields      []ports.Field
	includeTime bool
}

// ConsoleOption configures a ConsoleLogger.
type ConsoleOption func(*ConsoleLogger)

// WithOutput sets the output writer (default os.Stderr).
func WithOutput(w io.Writer) ConsoleOption {
	return func(l *ConsoleLogger) {
		l.out = w
	}
}

// WithLevel sets the minimum level (default Info).
func WithLevel(level ports.Level) ConsoleOption {
	return func(l *ConsoleLogger) {
		l.level = level
	}
}

// WithTimestamp toggles the time prefix (default on).
func WithTimestamp(enabled bool) ConsoleOption {
	return func(l *ConsoleLogger) {
		l.includeTime = enabled
	}
}

// NewConsoleLogger creates a ConsoleLogger.
func NewConsoleLogger(opts ...ConsoleOption) *ConsoleLogger {
	l := &ConsoleLogger{
		out:         os.Stderr,
		level:       ports.LevelInfo,
		includeTime: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelDebug, msg, fields)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelInfo, msg, fields)
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelWarn, msg, fields)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelError, msg, fields)
}

// With returns a logger carrying additional base fields.
func (l *ConsoleLogger) With(fields ...ports.Field) ports.Logger {
	combined := make([]ports.Field, 0, len(l.fields)+len(fields))
	combined = append(combined, l.fields...)
	combined = append(combined, fields...)

	return &ConsoleLogger{
		out:         l.out,
		level:       l.level,
		fields:      combined,
		includeTime: l.includeTime,
	}
}

func (l *ConsoleLogger) log(_ context.Context, level ports.Level, msg string, fields []ports.Field) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var prefix string
	if l.includeTime {
		prefix = time.Now().Format("15:04:05") + " "
	}
	prefix += "[" + level.String() + "] "

	line := prefix + msg
	for _, f := range l.fields {
		line += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	for _, f := range fields {
		line += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}

	_, _ = fmt.Fprintln(l.out, line)
}

var _ ports.Logger = (*ConsoleLogger)(nil)
