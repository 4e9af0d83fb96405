// internal/registry/registry.go
// Package registry loads, normalizes, filters, and queries the enterprise
// model registry that backs the gallery.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Canonical field names every normalized record exposes.
const (
	FieldModelName              = "model_name"
	FieldDomain                 = "domain"
	FieldModelStage             = "model_stage"
	FieldOwnerTeam              = "owner_team"
	FieldLastRetrainedDate      = "last_retrained_date"
	FieldSLATier                = "sla_tier"
	FieldMonitoringStatus       = "monitoring_status"
	FieldApprovalStatus         = "approval_status"
	FieldInferenceEndpointID    = "inference_endpoint_id"
	FieldFeatureStoreDependency = "feature_store_dependency"
)

// RequiredFields lists the canonical columns a registry source must provide.
// Sources missing any of these fail fast; no partial registry is ever built.
var RequiredFields = []string{
	FieldModelName,
	FieldDomain,
	FieldModelStage,
	FieldOwnerTeam,
	FieldSLATier,
	FieldMonitoringStatus,
	FieldApprovalStatus,
}

// synonyms maps normalized raw column names onto the canonical schema.
// Only columns present both here and in the input are renamed; anything
// else passes through untouched.
var synonyms = map[string]string{
	"model_name":               FieldModelName,
	"name":                     FieldModelName,
	"domain":                   FieldDomain,
	"model_stage":              FieldModelStage,
	"type":                     FieldModelStage,
	"owner_team":               FieldOwnerTeam,
	"contributor":              FieldOwnerTeam,
	"last_retrained_date":      FieldLastRetrainedDate,
	"sla_tier":                 FieldSLATier,
	"monitoring_status":        FieldMonitoringStatus,
	"approval_status":          FieldApprovalStatus,
	"inference_endpoint_id":    FieldInferenceEndpointID,
	"feature_store_dependency": FieldFeatureStoreDependency,
}

// Record is one normalized row of the model registry.
type Record struct {
	ModelName              string `json:"model_name"`
	Domain                 string `json:"domain"`
	ModelStage             string `json:"model_stage"`
	OwnerTeam              string `json:"owner_team"`
	LastRetrainedDate      string `json:"last_retrained_date,omitempty"`
	SLATier                string `json:"sla_tier"`
	MonitoringStatus       string `json:"monitoring_status"`
	ApprovalStatus         string `json:"approval_status"`
	InferenceEndpointID    string `json:"inference_endpoint_id,omitempty"`
	FeatureStoreDependency string `json:"feature_store_dependency,omitempty"`

	// Extra holds unrecognized input columns. They are retained verbatim
	// and never validated.
	Extra map[string]string `json:"-"`
}

// Field returns the record value for a canonical field name, falling back
// to the Extra columns for anything unrecognized.
func (r Record) Field(name string) string {
	switch name {
	case FieldModelName:
		return r.ModelName
	case FieldDomain:
		return r.Domain
	case FieldModelStage:
		return r.ModelStage
	case FieldOwnerTeam:
		return r.OwnerTeam
	case FieldLastRetrainedDate:
		return r.LastRetrainedDate
	case FieldSLATier:
		return r.SLATier
	case FieldMonitoringStatus:
		return r.MonitoringStatus
	case FieldApprovalStatus:
		return r.ApprovalStatus
	case FieldInferenceEndpointID:
		return r.InferenceEndpointID
	case FieldFeatureStoreDependency:
		return r.FeatureStoreDependency
	}
	return r.Extra[name]
}

// Registry is an ordered, read-only collection of normalized records.
// It is never mutated after load; Filter derives new views.
type Registry struct {
	Records []Record
	Source  string
	Demo    bool
}

// Len returns the number of records in the registry.
func (reg *Registry) Len() int {
	if reg == nil {
		return 0
	}
	return len(reg.Records)
}

// ModelNames returns the display names of all records in registry order.
func (reg *Registry) ModelNames() []string {
	names := make([]string, 0, reg.Len())
	for _, rec := range reg.Records {
		names = append(names, rec.ModelName)
	}
	return names
}

// ErrModelNotFound signals a lookup for a model name absent from the current
// view, typically a selection gone stale after a filter change. Callers
// recover by re-deriving the selectable set from the current view.
var ErrModelNotFound = errors.New("model not found in current view")

// SchemaError reports a registry source that parsed but does not satisfy the
// canonical schema. Loading halts; the missing columns are surfaced verbatim.
type SchemaError struct {
	// MissingColumns lists required canonical columns absent from the
	// source, sorted.
	MissingColumns []string
	// EmptyCells lists required fields found blank, as "row N: field".
	EmptyCells []string
}

// Error renders the schema violations in a single line.
func (e *SchemaError) Error() string {
	var parts []string
	if len(e.MissingColumns) > 0 {
		parts = append(parts, fmt.Sprintf("missing required columns: %s", strings.Join(e.MissingColumns, ", ")))
	}
	if len(e.EmptyCells) > 0 {
		parts = append(parts, fmt.Sprintf("empty required values: %s", strings.Join(e.EmptyCells, "; ")))
	}
	if len(parts) == 0 {
		return "registry schema error"
	}
	return "registry schema error: " + strings.Join(parts, "; ")
}

// newSchemaError builds a SchemaError with deterministically ordered columns.
func newSchemaError(missing, empty []string) *SchemaError {
	sort.Strings(missing)
	return &SchemaError{MissingColumns: missing, EmptyCells: empty}
}

// normalizeHeader strips surrounding whitespace, a UTF-8 BOM if present, and
// lowercases a raw column name.
func normalizeHeader(raw string) string {
	h := strings.TrimPrefix(raw, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}
