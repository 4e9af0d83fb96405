// internal/registry/cache.go
package registry

import "sync"

// Cache memoizes registry loads per source path for the lifetime of the
// process. The cached Registry is immutable after construction, so any
// number of sessions may read it concurrently; each session derives its own
// filtered views. Invalidation is restart only.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	reg *Registry
	err error
}

// NewCache returns an empty registry cache. The cache is passed explicitly
// into whatever presentation layer consumes it; there is no package-global
// instance.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Load returns the memoized registry for path, loading it on first access.
// Repeated calls with the same path return the identical Registry value (or
// the identical error) without re-reading the source.
func (c *Cache) Load(path string) (*Registry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[path]; ok {
		return entry.reg, entry.err
	}

	reg, err := Load(path)
	c.entries[path] = &cacheEntry{reg: reg, err: err}
	return reg, err
}
