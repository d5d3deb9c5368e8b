package ports

import (
	"context"

	"tour-curation-service/internal/domain"
)

// Contract for fetching points of interest from a live geodata provider.
// Implementations own the mood-to-category mapping, caching, and radius
// escalation. Returned places carry no role or weight metadata; callers fall
// back to the metadata-free tour variant for them.
type POISource interface {
	// Return at least three POIs around center matching the mood, or
	// ErrInsufficientCandidates.
	FetchByMood(ctx context.Context, mood string, center domain.Coordinates) ([]domain.Place, error)
}
