// internal/cli/validate_registry_entry.go
package gallery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mwiater/gallery/internal/registry"
)

// runValidateRegistry loads the registry and reports schema violations.
// Column-level failures surface from the loader; row-level checks run
// against the canonical record schema.
func runValidateRegistry() error {
	cfg := getConfig()
	reg, err := registryCache.Load(cfg.RegistryFile())

	var schemaErr *registry.SchemaError
	if errors.As(err, &schemaErr) {
		if len(schemaErr.MissingColumns) > 0 {
			color.Red("Missing required columns: %s", strings.Join(schemaErr.MissingColumns, ", "))
		}
		for _, cell := range schemaErr.EmptyCells {
			color.Red("Empty required value at %s", cell)
		}
		return fmt.Errorf("registry schema validation failed")
	}
	if err != nil {
		return err
	}

	if reg.Demo {
		color.Yellow("Registry source %q unavailable; validating the built-in demo registry.", cfg.RegistryFile())
	}

	violations, err := registry.ValidateRecords(reg)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		for _, v := range violations {
			color.Red("row %d (%s): %s", v.Row, v.Model, strings.Join(v.Problems, "; "))
		}
		return fmt.Errorf("%d of %d records failed validation", len(violations), reg.Len())
	}

	color.Green("All %d records satisfy the canonical schema.", reg.Len())
	return nil
}
