package services

import (
	"tour-curation-service/internal/domain"
	"tour-curation-service/internal/geo"
)

// FindCandidates filters the catalog down to places within radiusKm of origin
// that apply to the given daypart. Catalog order is preserved; the assembler
// and selector impose their own ordering. An empty result is a legitimate
// "no results" case, not an error.
func FindCandidates(origin domain.Coordinates, radiusKm float64, timeOfDay domain.TimeOfDay, catalog []domain.Place) []domain.Place {
	candidates := make([]domain.Place, 0, len(catalog))
	for _, p := range catalog {
		d := geo.DistanceKm(origin.Lat, origin.Lon, p.Coordinates.Lat, p.Coordinates.Lon)
		if d <= radiusKm && p.ValidAt(timeOfDay) {
			candidates = append(candidates, p)
		}
	}
	return candidates
}
