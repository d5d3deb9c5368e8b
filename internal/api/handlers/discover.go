package handlers

import (
	"math/rand"
	"net/http"

	"tour-curation-service/internal/api/dto"
	"tour-curation-service/internal/domain"
	"tour-curation-service/internal/ports"
	"tour-curation-service/internal/services"
)

// DiscoverHandler generates a three-stop tour from a live POI source.
// Fetched places carry no role or weight metadata, so the nearest-neighbor
// chain variant is used instead of role slots.
type DiscoverHandler struct {
	Source ports.POISource
	Rand   func() *rand.Rand
}

func (h *DiscoverHandler) Discover(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DiscoverRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Lat == nil || req.Lon == nil {
		writeEngineError(w, r, domain.ErrInvalidStartPoint)
		return
	}
	center := domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon}

	pois, err := h.Source.FetchByMood(r.Context(), req.Mood, center)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	stops, err := services.ChainTour(h.Rand(), pois)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	distanceKm, walkMinutes := services.TourSummary(center, stops)

	writeJSON(w, r, http.StatusOK, dto.TourResponse{
		Stops:            dto.PlacesFromDomain(stops),
		TotalDistanceKm:  distanceKm,
		TotalWalkMinutes: walkMinutes,
	})
}
