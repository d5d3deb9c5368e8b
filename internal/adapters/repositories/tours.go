package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"tour-curation-service/internal/domain"
)

type tourSeed struct {
	Title      string `json:"title"`
	Duration   string `json:"duration"`
	Difficulty string `json:"difficulty"`
	Stops      []struct {
		Name        string  `json:"name"`
		Category    string  `json:"category"`
		Lat         float64 `json:"lat"`
		Lon         float64 `json:"lon"`
		Duration    string  `json:"duration"`
		Description string  `json:"description"`
	} `json:"stops"`
}

// LoadCuratedTours reads the hand-built tour catalog from a JSON file.
func LoadCuratedTours(jsonPath string) ([]domain.CuratedTour, error) {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load curated tours: read %q: %w", jsonPath, err)
	}

	var seeds []tourSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("load curated tours: parse json: %w", err)
	}

	tours := make([]domain.CuratedTour, 0, len(seeds))
	for i, t := range seeds {
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("load curated tours: tour at index %d has no title", i)
		}

		stops := make([]domain.CuratedStop, 0, len(t.Stops))
		for _, s := range t.Stops {
			stops = append(stops, domain.CuratedStop{
				Name:        s.Name,
				Category:    s.Category,
				Coordinates: domain.Coordinates{Lat: s.Lat, Lon: s.Lon},
				Duration:    s.Duration,
				Description: s.Description,
			})
		}

		tours = append(tours, domain.CuratedTour{
			Title:      t.Title,
			Duration:   t.Duration,
			Difficulty: t.Difficulty,
			Stops:      stops,
		})
	}

	return tours, nil
}
