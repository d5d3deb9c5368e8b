package services

import (
	"math"

	"tour-curation-service/internal/domain"
	"tour-curation-service/internal/geo"
)

const (
	walkingSpeedKmh    = 4.5
	stayMinutesPerStop = 25
)

// TourSummary estimates the walking distance and total time for a tour:
// haversine legs from the start point through each stop at walking pace,
// plus a fixed stay per stop.
func TourSummary(start domain.Coordinates, stops []domain.Place) (distanceKm float64, walkMinutes int) {
	prev := start
	for _, s := range stops {
		distanceKm += geo.DistanceKm(prev.Lat, prev.Lon, s.Coordinates.Lat, s.Coordinates.Lon)
		prev = s.Coordinates
	}

	walking := (distanceKm / walkingSpeedKmh) * 60
	walkMinutes = int(math.Round(walking + float64(len(stops))*stayMinutesPerStop))
	return distanceKm, walkMinutes
}
