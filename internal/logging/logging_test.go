package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "gallery.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogFeedback("Credit Risk PD", "great docs")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, "[FEEDBACK] model=Credit Risk PD") {
		t.Fatalf("expected LogFeedback content, got: %s", content)
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init with empty path should succeed, got: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})
	if err := Close(); err != nil {
		t.Fatalf("Close without file should be a no-op, got: %v", err)
	}
}

func TestBuildFeedbackMessageDefaults(t *testing.T) {
	msg := buildFeedbackMessage("  ", "line one\nline two")
	if !strings.Contains(msg, "model=unknown") {
		t.Fatalf("expected default model, got: %s", msg)
	}
	if strings.Contains(msg, "\n") {
		t.Fatalf("expected single-line entry, got: %s", msg)
	}
	if !strings.Contains(msg, "line one / line two") {
		t.Fatalf("expected joined lines, got: %s", msg)
	}
}
