package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// FileLoggerAdapter writes one JSON object per line to a log file. It is
// used for the provider call log kept next to the application log.
type FileLoggerAdapter struct {
	file  *os.File
	mutex sync.Mutex
	now   func() time.Time
}

// NewFileLoggerAdapter opens (or creates) the log file for appending
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	return &FileLoggerAdapter{file: file, now: time.Now}, nil
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields)
}

// Close releases the file handle; later writes are dropped
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields []ports.Field) {
	entry := map[string]interface{}{
		"timestamp": f.now().Format(time.RFC3339),
		"level":     level,
		"message":   msg,
	}
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			entry[field.Key] = err.Error()
			continue
		}
		entry[field.Key] = field.Value
	}

	line, err := json.Marshal(entry)
	if err != nil {
		line, _ = json.Marshal(map[string]string{
			"timestamp": f.now().Format(time.RFC3339),
			"level":     "ERROR",
			"message":   fmt.Sprintf("failed to marshal log entry %q: %v", msg, err),
		})
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return
	}
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

// TeeLogger fans every entry out to several loggers
type TeeLogger []ports.Logger

func (t TeeLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Debug(msg, fields...)
	}
}

func (t TeeLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Info(msg, fields...)
	}
}

func (t TeeLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Warn(msg, fields...)
	}
}

func (t TeeLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Error(msg, fields...)
	}
}
