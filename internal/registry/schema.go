// internal/registry/schema.go
package registry

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// RecordSchema returns the JSON schema a normalized registry record must
// satisfy. The seven required canonical fields must be non-empty strings;
// the optional fields may be absent.
func RecordSchema() map[string]any {
	properties := map[string]any{}
	for _, field := range RequiredFields {
		properties[field] = map[string]any{
			"type":      "string",
			"minLength": 1,
		}
	}
	for _, field := range []string{FieldLastRetrainedDate, FieldInferenceEndpointID, FieldFeatureStoreDependency} {
		properties[field] = map[string]any{"type": "string"}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   RequiredFields,
	}
}

// RowViolation describes one record that failed schema validation.
type RowViolation struct {
	Row      int
	Model    string
	Problems []string
}

// ValidateRecords checks every record of the registry against RecordSchema
// and returns per-row violations. A nil slice means the registry is clean.
func ValidateRecords(reg *Registry) ([]RowViolation, error) {
	schemaLoader := gojsonschema.NewGoLoader(RecordSchema())

	var violations []RowViolation
	for i, rec := range reg.Records {
		doc, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("could not encode record %d: %w", i+1, err)
		}

		result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(doc))
		if err != nil {
			return nil, fmt.Errorf("schema validation error on record %d: %w", i+1, err)
		}
		if result.Valid() {
			continue
		}

		v := RowViolation{Row: i + 1, Model: rec.ModelName}
		for _, desc := range result.Errors() {
			v.Problems = append(v.Problems, desc.String())
		}
		violations = append(violations, v)
	}
	return violations, nil
}
