package dto

import "tour-curation-service/internal/domain"

type PlaceResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Description      string   `json:"description,omitempty"`
	Lat              float64  `json:"lat"`
	Lon              float64  `json:"lon"`
	SpotRole         string   `json:"spot_role,omitempty"`
	DurationMinutes  int      `json:"duration_minutes,omitempty"`
	GenerationWeight float64  `json:"generation_weight,omitempty"`
	TimesOfDay       []string `json:"time_of_day,omitempty"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

// PlaceFromDomain maps a domain place onto the wire shape.
func PlaceFromDomain(p domain.Place) PlaceResponse {
	times := make([]string, 0, len(p.TimesOfDay))
	for _, t := range p.TimesOfDay {
		times = append(times, string(t))
	}
	if len(times) == 0 {
		times = nil
	}

	return PlaceResponse{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		Description:      p.Description,
		Lat:              p.Coordinates.Lat,
		Lon:              p.Coordinates.Lon,
		SpotRole:         string(p.Role),
		DurationMinutes:  p.DurationMinutes,
		GenerationWeight: p.GenerationWeight,
		TimesOfDay:       times,
	}
}

// PlaceToDomain maps a wire place back into the domain. The stop editor
// round-trips stops through the client, so the reverse mapping must preserve
// role and weight metadata.
func PlaceToDomain(p PlaceResponse) domain.Place {
	times := make([]domain.TimeOfDay, 0, len(p.TimesOfDay))
	for _, t := range p.TimesOfDay {
		times = append(times, domain.TimeOfDay(t))
	}
	if len(times) == 0 {
		times = nil
	}

	return domain.Place{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		Description:      p.Description,
		Coordinates:      domain.Coordinates{Lat: p.Lat, Lon: p.Lon},
		Role:             domain.SpotRole(p.SpotRole),
		DurationMinutes:  p.DurationMinutes,
		GenerationWeight: p.GenerationWeight,
		TimesOfDay:       times,
	}
}

// PlacesFromDomain maps a slice of domain places.
func PlacesFromDomain(places []domain.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		out = append(out, PlaceFromDomain(p))
	}
	return out
}

// PlacesToDomain maps a slice of wire places.
func PlacesToDomain(places []PlaceResponse) []domain.Place {
	out := make([]domain.Place, 0, len(places))
	for _, p := range places {
		out = append(out, PlaceToDomain(p))
	}
	return out
}
