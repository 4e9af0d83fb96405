package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintf(out, "  Debug:         %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Registry Path: %s\n", cfg.RegistryFile())
	fmt.Fprintf(out, "  Log File:      %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Export Path:   %s\n", cfg.ExportFile())
}
