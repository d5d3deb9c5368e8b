package services

import (
	"fmt"
	"math/rand"

	"tour-curation-service/internal/domain"
	"tour-curation-service/internal/geo"
)

const (
	// BaseRadiusKm is the initial candidate search radius around the start point.
	BaseRadiusKm = 4.0
	// EscalatedRadiusKm is tried once when the base radius yields too few candidates.
	EscalatedRadiusKm = 10.0
	// MinCandidates is the smallest candidate set the assembler will work with.
	MinCandidates = 3
	// MaxTourStops caps the number of stops in a role-based tour.
	MaxTourStops = 4
	// MaxDurationMinutes is the total visit-duration budget for a tour.
	MaxDurationMinutes = 180
)

// AssembleTour builds a role-slotted tour from the curated catalog.
//
// The role slots approximate a narrative arc (arrival anchor, centerpiece,
// light fill-ins); this is a heuristic, not an optimizer. The anchor seeds
// the tour unconditionally, the highlight is admitted only within the
// duration budget, and supporting/micro fill-in stops on the first pick that
// would overflow the budget without trying a smaller one.
//
// baseRadiusKm <= 0 selects the default base radius. The radius escalates
// once when the initial candidate set is too small.
func AssembleTour(rng *rand.Rand, origin domain.Coordinates, timeOfDay domain.TimeOfDay, baseRadiusKm float64, catalog []domain.Place) (*domain.Tour, error) {
	if baseRadiusKm <= 0 {
		baseRadiusKm = BaseRadiusKm
	}

	candidates := FindCandidates(origin, baseRadiusKm, timeOfDay, catalog)
	if len(candidates) < MinCandidates && baseRadiusKm < EscalatedRadiusKm {
		candidates = FindCandidates(origin, EscalatedRadiusKm, timeOfDay, catalog)
	}
	if len(candidates) < MinCandidates {
		return nil, fmt.Errorf("assemble tour: %d candidates within %.0f km: %w",
			len(candidates), EscalatedRadiusKm, domain.ErrInsufficientCandidates)
	}

	tour := &domain.Tour{}

	// Anchor: prefer role-tagged places, otherwise fall back to the full set.
	anchors := filterByRole(candidates, domain.RoleAnchor, tour)
	anchor, ok := WeightedPick(rng, anchors)
	if !ok {
		anchor, ok = WeightedPick(rng, candidates)
	}
	if ok {
		tour.Add(anchor)
	}

	// Highlight: admitted only if it fits the remaining budget.
	highlights := filterByRole(candidates, domain.RoleHighlight, tour)
	if highlight, ok := WeightedPick(rng, highlights); ok {
		if tour.TotalDurationMinutes+highlight.DurationMinutes <= MaxDurationMinutes {
			tour.Add(highlight)
		}
	}

	// Supporting/micro fill-in up to MaxTourStops. A pick that would overflow
	// the budget is discarded and ends the loop.
	remaining := make([]domain.Place, 0, len(candidates))
	for _, p := range candidates {
		if tour.Contains(p.ID) {
			continue
		}
		if p.Role == domain.RoleSupporting || p.Role == domain.RoleMicro {
			remaining = append(remaining, p)
		}
	}

	for tour.Len() < MaxTourStops && len(remaining) > 0 {
		next, ok := WeightedPick(rng, remaining)
		if !ok {
			break
		}
		if tour.TotalDurationMinutes+next.DurationMinutes > MaxDurationMinutes {
			break
		}

		tour.Add(next)

		for i, r := range remaining {
			if r.ID == next.ID {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}

	return tour, nil
}

// ChainTour builds a tour from places without role or weight metadata
// (typically a live fetch): a random start, then each subsequent stop is the
// nearest remaining place to the previous one, for exactly three stops.
func ChainTour(rng *rand.Rand, pois []domain.Place) ([]domain.Place, error) {
	if len(pois) < MinCandidates {
		return nil, fmt.Errorf("chain tour: %d places: %w", len(pois), domain.ErrInsufficientCandidates)
	}

	shuffled := make([]domain.Place, len(pois))
	copy(shuffled, pois)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	stops := []domain.Place{shuffled[0]}
	remaining := shuffled[1:]

	for len(stops) < 3 {
		prev := stops[len(stops)-1]
		best := nearestIndex(prev, remaining)
		stops = append(stops, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return stops, nil
}

func nearestIndex(from domain.Place, pool []domain.Place) int {
	best := 0
	bestDist := geo.DistanceKm(from.Coordinates.Lat, from.Coordinates.Lon,
		pool[0].Coordinates.Lat, pool[0].Coordinates.Lon)
	for i := 1; i < len(pool); i++ {
		d := geo.DistanceKm(from.Coordinates.Lat, from.Coordinates.Lon,
			pool[i].Coordinates.Lat, pool[i].Coordinates.Lon)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func filterByRole(candidates []domain.Place, role domain.SpotRole, tour *domain.Tour) []domain.Place {
	out := make([]domain.Place, 0, len(candidates))
	for _, p := range candidates {
		if p.Role == role && !tour.Contains(p.ID) {
			out = append(out, p)
		}
	}
	return out
}
