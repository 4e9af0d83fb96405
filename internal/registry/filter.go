// internal/registry/filter.go
package registry

// Filter returns a new ordered view of reg containing exactly the records
// whose domain, lifecycle stage, and SLA tier are each members of the
// corresponding allowed set. An empty allowed set on any criterion yields an
// empty view. The input registry is never mutated.
func Filter(reg *Registry, domains, stages, slaTiers []string) *Registry {
	view := &Registry{Source: reg.Source, Demo: reg.Demo}

	domainSet := toSet(domains)
	stageSet := toSet(stages)
	tierSet := toSet(slaTiers)
	if len(domainSet) == 0 || len(stageSet) == 0 || len(tierSet) == 0 {
		return view
	}

	for _, rec := range reg.Records {
		if _, ok := domainSet[rec.Domain]; !ok {
			continue
		}
		if _, ok := stageSet[rec.ModelStage]; !ok {
			continue
		}
		if _, ok := tierSet[rec.SLATier]; !ok {
			continue
		}
		view.Records = append(view.Records, rec)
	}
	return view
}

// Lookup returns the first record in the view whose model name equals name,
// or ErrModelNotFound when the selection is absent (e.g. stale after a
// filter change shrank the view).
func Lookup(view *Registry, name string) (Record, error) {
	for _, rec := range view.Records {
		if rec.ModelName == name {
			return rec, nil
		}
	}
	return Record{}, ErrModelNotFound
}

// Domains returns the distinct domain values in first-seen registry order.
func Domains(reg *Registry) []string { return distinct(reg, func(r Record) string { return r.Domain }) }

// Stages returns the distinct lifecycle stage values in first-seen order.
func Stages(reg *Registry) []string {
	return distinct(reg, func(r Record) string { return r.ModelStage })
}

// SLATiers returns the distinct SLA tier values in first-seen order.
func SLATiers(reg *Registry) []string {
	return distinct(reg, func(r Record) string { return r.SLATier })
}

// distinct collects unique non-blank values of one field, preserving the
// order records appear in the registry.
func distinct(reg *Registry, field func(Record) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, rec := range reg.Records {
		v := field(rec)
		if isBlank(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// toSet builds a membership set from a slice of allowed values.
func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
