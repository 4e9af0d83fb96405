// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad tests the Load function to ensure it correctly handles various
// scenarios: a valid configuration file loads without error, invalid JSON
// fails, an explicit path that does not exist fails, and a missing default
// config yields the zero configuration with all defaults applied.
func TestLoad(t *testing.T) {
	validConfig := `{
        "registryPath": "data/models.csv",
        "debug": true,
        "logFile": "logs/gallery.log"
    }`
	tmpfile, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	if _, err := tmpfile.Write([]byte(validConfig)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.RegistryFile() != "data/models.csv" {
		t.Fatalf("expected configured registry path, got %q", cfg.RegistryFile())
	}
	if !cfg.Debug {
		t.Fatal("expected debug to be enabled")
	}
	if cfg.LogFilePath() != "logs/gallery.log" {
		t.Fatalf("expected configured log path, got %q", cfg.LogFilePath())
	}

	invalidJSON := `{ "registryPath": `
	tmpfile2, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile2.Name())
	if _, err := tmpfile2.Write([]byte(invalidJSON)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile2.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmpfile2.Name()); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nonexistent.json")); err == nil {
		t.Fatal("Load() with explicit nonexistent file should have failed")
	}
}

// TestDefaults verifies the accessor methods on a zero Config.
func TestDefaults(t *testing.T) {
	var cfg Config
	if cfg.RegistryFile() != DefaultRegistryPath {
		t.Fatalf("expected default registry path, got %q", cfg.RegistryFile())
	}
	if cfg.LogFilePath() != "gallery.log" {
		t.Fatalf("expected default log path, got %q", cfg.LogFilePath())
	}
	if cfg.ExportFile() != "registry_export.json" {
		t.Fatalf("expected default export path, got %q", cfg.ExportFile())
	}
}

// TestLoadMissingDefaultConfig verifies that a missing default config file
// is not an error.
func TestLoadMissingDefaultConfig(t *testing.T) {
	tempDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config present should use defaults, got: %v", err)
	}
	if cfg.RegistryFile() != DefaultRegistryPath {
		t.Fatalf("expected default registry path, got %q", cfg.RegistryFile())
	}
}
