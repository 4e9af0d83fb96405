// internal/cli/browse_entry.go
package gallery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mwiater/gallery/internal/registry"
)

// runBrowse starts the dashboard, translating a schema failure into a
// readable report so the session halts before anything partial renders.
func runBrowse() error {
	err := startGUI(getConfig(), registryCache)
	if err == nil {
		return nil
	}

	var schemaErr *registry.SchemaError
	if errors.As(err, &schemaErr) {
		color.Red("Registry source failed schema validation.")
		if len(schemaErr.MissingColumns) > 0 {
			color.Red("Missing required columns: %s", strings.Join(schemaErr.MissingColumns, ", "))
		}
		for _, cell := range schemaErr.EmptyCells {
			color.Red("Empty required value at %s", cell)
		}
		return fmt.Errorf("registry schema validation failed")
	}
	return err
}
