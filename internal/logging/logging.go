// internal/logging/logging.go
// Package logging tees the session log to stdout and an optional log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the stdlib logger to stdout plus the file at logPath, creating
// parent directories as needed. An empty path logs to stdout only.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close flushes and closes the log file, restoring stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent writes a formatted message to the session log.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogFeedback records a feedback submission in the session log. Feedback is
// session-scoped only; the log line is the entire record of it.
func LogFeedback(model, text string) {
	log.Println(buildFeedbackMessage(model, text))
}

// buildFeedbackMessage formats a feedback submission as a single log line.
func buildFeedbackMessage(model, text string) string {
	modelValue := strings.TrimSpace(model)
	if modelValue == "" {
		modelValue = "unknown"
	}
	// Keep the entry on one line so the log stays grep-able.
	textValue := strings.ReplaceAll(strings.TrimSpace(text), "\n", " / ")
	return fmt.Sprintf("[FEEDBACK] model=%s text=%q", modelValue, textValue)
}
