// internal/registry/summary.go
package registry

import "strings"

// Stats holds the headline numbers shown at the top of the dashboard. They
// are derived from the full registry, not the filtered view.
type Stats struct {
	TotalModels       int
	ProductionModels  int
	HealthyMonitoring int
	DomainsCovered    int
}

// Summary computes headline statistics for a registry. Stage and monitoring
// comparisons are case-insensitive since casing varies by source.
func Summary(reg *Registry) Stats {
	stats := Stats{TotalModels: reg.Len()}
	domains := make(map[string]struct{})
	for _, rec := range reg.Records {
		if strings.EqualFold(strings.TrimSpace(rec.ModelStage), "prod") {
			stats.ProductionModels++
		}
		if strings.EqualFold(strings.TrimSpace(rec.MonitoringStatus), "healthy") {
			stats.HealthyMonitoring++
		}
		if !isBlank(rec.Domain) {
			domains[rec.Domain] = struct{}{}
		}
	}
	stats.DomainsCovered = len(domains)
	return stats
}
