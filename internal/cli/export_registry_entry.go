// internal/cli/export_registry_entry.go
package gallery

import (
	"encoding/json"
	"fmt"

	"github.com/mwiater/gallery/internal/logging"
	"github.com/mwiater/gallery/internal/util"
)

// runExportRegistry writes the normalized registry records to a JSON file.
func runExportRegistry(out string) error {
	cfg := getConfig()
	reg, err := registryCache.Load(cfg.RegistryFile())
	if err != nil {
		return err
	}

	if out == "" {
		out = cfg.ExportFile()
	}

	data, err := json.MarshalIndent(reg.Records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	if err := util.WriteFile(out, data); err != nil {
		return fmt.Errorf("write %q: %w", out, err)
	}

	logging.LogEvent("exported %d registry records to %q", reg.Len(), out)
	fmt.Printf("Exported %d records to %s\n", reg.Len(), out)
	return nil
}
