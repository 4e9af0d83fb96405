// internal/appconfig/show_test.go
package appconfig

import (
	"bytes"
	"strings"
	"testing"
)

// TestShowConfig verifies the rendered summary for a loaded configuration
// and the defaults notice when no file was read.
func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{RegistryPath: "models.csv", Debug: true}
	ShowConfig(&buf, "config/config.json", cfg, Config{})

	out := buf.String()
	if !strings.Contains(out, "Config file: config/config.json") {
		t.Errorf("expected config file line, got:\n%s", out)
	}
	if !strings.Contains(out, "Registry Path: models.csv") {
		t.Errorf("expected registry path line, got:\n%s", out)
	}
	if !strings.Contains(out, "Debug:         true") {
		t.Errorf("expected debug line, got:\n%s", out)
	}
}

func TestShowConfigDefaults(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil, Config{})

	out := buf.String()
	if !strings.Contains(out, "No config file loaded (using defaults).") {
		t.Errorf("expected defaults notice, got:\n%s", out)
	}
	if !strings.Contains(out, "Registry Path: "+DefaultRegistryPath) {
		t.Errorf("expected default registry path, got:\n%s", out)
	}
	if !strings.Contains(out, "Log File:      gallery.log") {
		t.Errorf("expected default log file, got:\n%s", out)
	}
}
