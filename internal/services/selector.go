package services

import (
	"math/rand"

	"tour-curation-service/internal/domain"
)

// WeightedPick selects one place with probability proportional to its
// generation weight (non-positive weights count as 1). The random source is
// injected so tests can seed it deterministically.
//
// Returns false for an empty pool; selection never runs against one.
func WeightedPick(rng *rand.Rand, places []domain.Place) (domain.Place, bool) {
	if len(places) == 0 {
		return domain.Place{}, false
	}

	total := 0.0
	for _, p := range places {
		total += p.Weight()
	}

	draw := rng.Float64() * total

	running := 0.0
	for _, p := range places {
		running += p.Weight()
		if draw < running {
			return p, true
		}
	}

	// Float rounding can leave draw at the upper edge of the last bucket.
	return places[len(places)-1], true
}
