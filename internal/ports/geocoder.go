package ports

import (
	"context"

	"tour-curation-service/internal/domain"
)

// Contract for resolving a free-text address into coordinates.
type Geocoder interface {
	// Return the best-match coordinates for the query. The boolean is false
	// when the provider returned zero matches.
	Geocode(ctx context.Context, query string) (domain.Coordinates, bool, error)
}
