// internal/registry/loader.go
package registry

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mwiater/gallery/internal/logging"
)

// Load reads the delimited registry source at path and returns a normalized
// Registry. Column names are whitespace-trimmed, lowercased, and renamed
// through the synonym table before the required canonical columns are
// checked. A source that cannot be read or parsed at all yields the built-in
// demo registry with no error; a source that parses but fails schema
// validation returns a *SchemaError and no registry.
func Load(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		logging.LogEvent("registry source %q unreadable (%v), using demo registry", path, err)
		return demoRegistry(path), nil
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil || len(rows) == 0 {
		logging.LogEvent("registry source %q unparsable (%v), using demo registry", path, err)
		return demoRegistry(path), nil
	}

	reg, err := normalize(rows)
	if err != nil {
		// The file was found and parsed; validation failures are never
		// masked by the demo fallback.
		return nil, err
	}
	reg.Source = path
	logging.LogEvent("loaded %d registry records from %q", reg.Len(), path)
	return reg, nil
}

// normalize turns a raw header+rows table into a validated Registry.
func normalize(rows [][]string) (*Registry, error) {
	header := rows[0]

	// columns maps canonical (or pass-through) names onto the first input
	// column that provides them; later duplicates are ignored.
	columns := make(map[string]int, len(header))
	for i, raw := range header {
		name := normalizeHeader(raw)
		if canonical, ok := synonyms[name]; ok {
			name = canonical
		}
		if name == "" {
			continue
		}
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}

	var missing []string
	for _, field := range RequiredFields {
		if _, ok := columns[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, newSchemaError(missing, nil)
	}

	canonical := make(map[string]struct{}, len(synonyms))
	for _, v := range synonyms {
		canonical[v] = struct{}{}
	}

	records := make([]Record, 0, len(rows)-1)
	var empty []string
	for rowIdx, row := range rows[1:] {
		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		rec := Record{
			ModelName:              cell(FieldModelName),
			Domain:                 cell(FieldDomain),
			ModelStage:             cell(FieldModelStage),
			OwnerTeam:              cell(FieldOwnerTeam),
			LastRetrainedDate:      cell(FieldLastRetrainedDate),
			SLATier:                cell(FieldSLATier),
			MonitoringStatus:       cell(FieldMonitoringStatus),
			ApprovalStatus:         cell(FieldApprovalStatus),
			InferenceEndpointID:    cell(FieldInferenceEndpointID),
			FeatureStoreDependency: cell(FieldFeatureStoreDependency),
		}

		for name, idx := range columns {
			if _, ok := canonical[name]; ok {
				continue
			}
			if idx >= len(row) {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[name] = row[idx]
		}

		for _, field := range RequiredFields {
			if isBlank(rec.Field(field)) {
				empty = append(empty, fmt.Sprintf("row %d: %s", rowIdx+1, field))
			}
		}

		records = append(records, rec)
	}
	if len(empty) > 0 {
		return nil, newSchemaError(nil, empty)
	}

	return &Registry{Records: records}, nil
}

// isBlank reports whether a cell value is empty after trimming whitespace.
func isBlank(v string) bool {
	for _, r := range v {
		if r != ' ' && r != '\t' && r != '\r' && r != '\n' {
			return false
		}
	}
	return true
}
