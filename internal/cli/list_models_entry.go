// internal/cli/list_models_entry.go
package gallery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/gallery/internal/registry"
)

// runListModels loads the registry through the session cache and prints
// every model grouped by domain.
func runListModels() error {
	cfg := getConfig()
	reg, err := registryCache.Load(cfg.RegistryFile())
	if err != nil {
		return err
	}

	domainStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	modelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	prodStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("46"))

	if reg.Demo {
		fmt.Println("Registry source unavailable; showing the built-in demo registry.")
		fmt.Println()
	}

	byDomain := make(map[string][]registry.Record)
	for _, rec := range reg.Records {
		byDomain[rec.Domain] = append(byDomain[rec.Domain], rec)
	}

	var domains []string
	for domain := range byDomain {
		domains = append(domains, domain)
	}
	sort.Strings(domains)

	for _, domain := range domains {
		fmt.Println(domainStyle.Render(fmt.Sprintf("%s:", domain)))
		for _, rec := range byDomain[domain] {
			line := fmt.Sprintf("- %s (%s, %s)", rec.ModelName, rec.ModelStage, rec.MonitoringStatus)
			if strings.EqualFold(rec.ModelStage, "prod") {
				fmt.Println("  " + prodStyle.Render(line))
			} else {
				fmt.Println("  " + modelStyle.Render(line))
			}
		}
		fmt.Println()
	}
	return nil
}
