package services

import (
	"fmt"
	"math/rand"

	"tour-curation-service/internal/domain"
)

// RemoveStop deletes the stop at index, preserving the relative order of the
// remaining stops. It does not trigger a replacement.
func RemoveStop(tour *domain.Tour, index int) error {
	if index < 0 || index >= tour.Len() {
		return fmt.Errorf("remove stop: index %d out of range (tour has %d stops)", index, tour.Len())
	}

	tour.TotalDurationMinutes -= tour.Stops[index].DurationMinutes
	tour.Stops = append(tour.Stops[:index], tour.Stops[index+1:]...)
	return nil
}

// ReplaceStop substitutes a single stop with a weighted pick from the
// candidate set, preserving tour order and length. Candidates matching any
// other current stop are excluded. Same-role candidates are preferred; if none
// exist, the full filtered pool is used. On ErrNoReplacement the tour is left
// unchanged.
func ReplaceStop(rng *rand.Rand, tour *domain.Tour, index int, candidates []domain.Place) error {
	if index < 0 || index >= tour.Len() {
		return fmt.Errorf("replace stop: index %d out of range (tour has %d stops)", index, tour.Len())
	}

	exclude := make(map[string]struct{}, tour.Len())
	for i, s := range tour.Stops {
		if i != index {
			exclude[s.ID] = struct{}{}
		}
	}

	filtered := make([]domain.Place, 0, len(candidates))
	for _, p := range candidates {
		if _, skip := exclude[p.ID]; !skip {
			filtered = append(filtered, p)
		}
	}

	// Keep role continuity where possible.
	role := tour.Stops[index].Role
	pool := make([]domain.Place, 0, len(filtered))
	if role != "" {
		for _, p := range filtered {
			if p.Role == role {
				pool = append(pool, p)
			}
		}
	}
	if len(pool) == 0 {
		pool = filtered
	}

	replacement, ok := WeightedPick(rng, pool)
	if !ok {
		return fmt.Errorf("replace stop at index %d: %w", index, domain.ErrNoReplacement)
	}

	tour.TotalDurationMinutes += replacement.DurationMinutes - tour.Stops[index].DurationMinutes
	tour.Stops[index] = replacement
	return nil
}
