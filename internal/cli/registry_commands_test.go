// internal/cli/registry_commands_test.go
package gallery

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/gallery/internal/appconfig"
	"github.com/mwiater/gallery/internal/registry"
)

// withRegistryConfig points currentConfig and the session cache at a
// temporary registry source for the duration of a test.
func withRegistryConfig(t *testing.T, csv string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "registry.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write registry source: %v", err)
	}

	originalConfig := currentConfig
	originalCache := registryCache
	t.Cleanup(func() {
		currentConfig = originalConfig
		registryCache = originalCache
	})
	currentConfig = &appconfig.Config{RegistryPath: path}
	registryCache = registry.NewCache()
	return path
}

const validRegistryCSV = `name,domain,type,contributor,sla_tier,monitoring_status,approval_status
Credit Risk PD,Banking,prod,Risk Analytics,Gold,Healthy,Approved
Customer Churn Propensity,Retail,canary,Growth ML,Silver,Drift detected,Approved
`

// TestRunExportRegistry verifies that export writes the normalized records
// to the requested JSON file.
func TestRunExportRegistry(t *testing.T) {
	withRegistryConfig(t, validRegistryCSV)

	out := filepath.Join(t.TempDir(), "export.json")
	if err := runExportRegistry(out); err != nil {
		t.Fatalf("runExportRegistry() failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export file: %v", err)
	}
	var records []registry.Record
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("decode export file: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 exported records, got %d", len(records))
	}
	if records[0].ModelName != "Credit Risk PD" {
		t.Errorf("unexpected first record: %q", records[0].ModelName)
	}
	if records[0].ModelStage != "prod" {
		t.Errorf("expected synonym column to land in ModelStage, got %q", records[0].ModelStage)
	}
}

// TestRunExportRegistryDefaultPath verifies that an empty --out falls back
// to the configured export path.
func TestRunExportRegistryDefaultPath(t *testing.T) {
	withRegistryConfig(t, validRegistryCSV)

	out := filepath.Join(t.TempDir(), "default_export.json")
	currentConfig.ExportPath = out

	if err := runExportRegistry(""); err != nil {
		t.Fatalf("runExportRegistry() failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected export at configured path: %v", err)
	}
}

// TestRunValidateRegistry covers the three validation outcomes: a clean
// source, a source with missing required columns, and the demo fallback.
func TestRunValidateRegistry(t *testing.T) {
	withRegistryConfig(t, validRegistryCSV)
	if err := runValidateRegistry(); err != nil {
		t.Fatalf("expected clean registry to validate, got: %v", err)
	}
}

func TestRunValidateRegistryMissingColumn(t *testing.T) {
	withRegistryConfig(t, "name,domain,type,sla_tier,monitoring_status,approval_status\nA,Banking,prod,Gold,Healthy,Approved\n")

	err := runValidateRegistry()
	if err == nil {
		t.Fatal("expected validation failure for missing owner_team column")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunValidateRegistryDemoFallback(t *testing.T) {
	withRegistryConfig(t, validRegistryCSV)
	currentConfig.RegistryPath = filepath.Join(t.TempDir(), "absent.csv")

	// The demo registry is well formed, so validation succeeds.
	if err := runValidateRegistry(); err != nil {
		t.Fatalf("expected demo registry to validate, got: %v", err)
	}
}

// TestRunShowModel verifies lookup by model name and the not-found report.
func TestRunShowModel(t *testing.T) {
	withRegistryConfig(t, validRegistryCSV)

	if err := runShowModel("Customer Churn Propensity"); err != nil {
		t.Fatalf("runShowModel() failed: %v", err)
	}

	err := runShowModel("No Such Model")
	if err == nil {
		t.Fatal("expected an error for an unknown model")
	}
	if !strings.Contains(err.Error(), "Credit Risk PD") {
		t.Errorf("expected error to list known models, got: %v", err)
	}
}
