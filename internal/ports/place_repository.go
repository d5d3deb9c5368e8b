package ports

import (
	"context"

	"tour-curation-service/internal/domain"
)

// Port: a boundary for retrieving the curated place catalog from a data source.
type PlaceRepository interface {
	// Retrieve all catalog places available for tour curation.
	ListPlaces(ctx context.Context) ([]domain.Place, error)
}
