package cache

import (
	"context"
	"sync"

	"tour-curation-service/internal/domain"
)

// MemoryPOICache is the default in-process POI cache. It is append-only with
// no eviction and lives for the lifetime of the process; it is constructed at
// startup and injected so tests get a fresh instance.
type MemoryPOICache struct {
	mu      sync.RWMutex
	entries map[string][]domain.Place
}

func NewMemoryPOICache() *MemoryPOICache {
	return &MemoryPOICache{entries: make(map[string][]domain.Place)}
}

func (c *MemoryPOICache) Get(_ context.Context, key string) ([]domain.Place, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pois, ok := c.entries[key]
	return pois, ok
}

func (c *MemoryPOICache) Put(_ context.Context, key string, pois []domain.Place) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = pois
}
