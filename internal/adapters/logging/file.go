package logging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rigup/rigup/internal/ports"
)

// DefaultLogFileName is the append-only run log in the user's home.
const DefaultLogFileName = ".rigup.log"

// FileLogger appends timestamped entries to the run log. The file is the
// only state that survives a run; it is never read back by rigup.
type FileLogger struct {
	mu     sync.Mutex
	path   string
	fields []ports.Field
}

// NewFileLogger creates a FileLogger writing to path. The parent directory
// must already exist.
func NewFileLogger(path string) *FileLogger {
	return &FileLogger{path: path}
}

// DefaultLogPath returns ~/.rigup.log, or the log name in the working
// directory when the home directory cannot be resolved.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultLogFileName
	}
	return filepath.Join(home, DefaultLogFileName)
}

// Debug logs a debug entry.
func (l *FileLogger) Debug(ctx context.Context, msg string, fields ...ports.Field) {
	l.append(ctx, ports.LevelDebug, msg, fields)
}

// Info logs an informational entry.
func (l *FileLogger) Info(ctx context.Context, msg string, fields ...ports.Field) {
	l.append(ctx, ports.LevelInfo, msg, fields)
}

// Warn logs a warning entry.
func (l *FileLogger) Warn(ctx context.Context, msg string, fields ...ports.Field) {
	l.append(ctx, ports.LevelWarn, msg, fields)
}

// Error logs an error entry.
func (l *FileLogger) Error(ctx context.Context, msg string, fields ...ports.Field) {
	l.append(ctx, ports.LevelError, msg, fields)
}

// With returns a logger carrying additional base fields.
func (l *FileLogger) With(fields ...ports.Field) ports.Logger {
	combined := make([]ports.Field, 0, len(l.fields)+len(fields))
	combined = append(combined, l.fields...)
	combined = append(combined, fields...)
	return &FileLogger{path: l.path, fields: combined}
}

func (l *FileLogger) append(_ context.Context, level ports.Level, msg string, fields []ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("%s [%s] %s", time.Now().Format(time.RFC3339), level.String(), msg)
	for _, f := range l.fields {
		line += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	for _, f := range fields {
		line += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	line += "\n"

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		// Logging must never break a run.
		return
	}
	_, _ = f.WriteString(line)
	_ = f.Close()
}

var _ ports.Logger = (*FileLogger)(nil)
