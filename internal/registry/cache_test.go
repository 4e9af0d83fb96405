// internal/registry/cache_test.go
package registry

import (
	"errors"
	"os"
	"testing"
)

// TestCacheReturnsSameInstance verifies that repeated loads of the same
// source return the identical Registry value without re-reading the file.
func TestCacheReturnsSameInstance(t *testing.T) {
	path := writeCSV(t, ""+
		"name,domain,type,contributor,sla_tier,monitoring_status,approval_status\n"+
		"Credit Risk PD,Banking,prod,Risk Analytics,Gold,Healthy,Approved\n")

	cache := NewCache()
	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Remove the source; the memoized registry must still be served.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("cached Load() failed: %v", err)
	}
	if first != second {
		t.Fatal("expected the identical cached Registry instance")
	}
}

// TestCacheMemoizesSchemaErrors verifies that a schema failure is as sticky
// as a successful load for the same source path.
func TestCacheMemoizesSchemaErrors(t *testing.T) {
	path := writeCSV(t, "name,domain\nCredit Risk PD,Banking\n")

	cache := NewCache()
	_, firstErr := cache.Load(path)
	var schemaErr *SchemaError
	if !errors.As(firstErr, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %v", firstErr)
	}

	_, secondErr := cache.Load(path)
	if firstErr != secondErr {
		t.Fatal("expected the identical memoized error")
	}
}

// TestCacheKeysBySource verifies that distinct source paths are cached
// independently.
func TestCacheKeysBySource(t *testing.T) {
	cache := NewCache()

	demoA, err := cache.Load("missing-a.csv")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	demoB, err := cache.Load("missing-b.csv")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if demoA == demoB {
		t.Fatal("distinct sources must not share a cache entry")
	}
	if demoA.Source != "missing-a.csv" || demoB.Source != "missing-b.csv" {
		t.Fatalf("cache entries carry the wrong sources: %q, %q", demoA.Source, demoB.Source)
	}
}
