// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// DefaultRegistryPath is the conventional location of the registry CSV.
	DefaultRegistryPath = "model_registry_v2_enterprise_schema.csv"
)

// Config represents the top-level application configuration.
type Config struct {
	RegistryPath string `json:"registryPath,omitempty"`
	Debug        bool   `json:"debug"`
	LogFile      string `json:"logFile,omitempty"`
	ExportPath   string `json:"export,omitempty"`
	ConfigPath   string `json:"-"`
}

// RegistryFile returns the registry source path, applying the conventional
// default if not set.
func (c Config) RegistryFile() string {
	if path := strings.TrimSpace(c.RegistryPath); path != "" {
		return path
	}
	return DefaultRegistryPath
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "gallery.log"
}

// ExportFile returns the export target path, applying a default if not set.
func (c Config) ExportFile() string {
	if path := strings.TrimSpace(c.ExportPath); path != "" {
		return path
	}
	return "registry_export.json"
}

// Load reads the application configuration from the specified path, with
// fallback to a legacy path. A missing file is not an error: the zero Config
// (all defaults) is returned so the gallery runs without any configuration.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, nil
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
