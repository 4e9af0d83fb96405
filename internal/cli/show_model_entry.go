// internal/cli/show_model_entry.go
package gallery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/mwiater/gallery/internal/registry"
)

// runShowModel looks up a single record by model name and dumps it.
func runShowModel(name string) error {
	cfg := getConfig()
	reg, err := registryCache.Load(cfg.RegistryFile())
	if err != nil {
		return err
	}

	rec, err := registry.Lookup(reg, name)
	if errors.Is(err, registry.ErrModelNotFound) {
		return fmt.Errorf("model %q not found in registry (known models: %s)",
			name, strings.Join(reg.ModelNames(), ", "))
	}
	if err != nil {
		return err
	}

	pp.Println(rec)
	return nil
}
