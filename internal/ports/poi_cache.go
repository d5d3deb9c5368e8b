package ports

import (
	"context"

	"tour-curation-service/internal/domain"
)

// Port: memoization of live POI fetch results for the lifetime of the process.
// Entries are append-only; there is no eviction. Results are idempotent for a
// given key, so concurrent fills of the same key are harmless.
type POICache interface {
	Get(ctx context.Context, key string) ([]domain.Place, bool)
	Put(ctx context.Context, key string, pois []domain.Place)
}
