package handlers

import (
	"encoding/json"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"tour-curation-service/internal/api/dto"
	"tour-curation-service/internal/domain"
	"tour-curation-service/internal/ports"
	"tour-curation-service/internal/services"
)

// TourHandler exposes role-based tour generation and stop editing over the
// curated catalog.
//
// Rand yields a fresh request-scoped random source (tour generation is
// intentionally non-reproducible in production; tests inject a seeded one).
// Now supplies the clock used to derive the daypart.
type TourHandler struct {
	Repo ports.PlaceRepository
	Rand func() *rand.Rand
	Now  func() time.Time
}

// Generate builds a tour of 1-4 role-slotted stops from the catalog.
func (h *TourHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.GenerateTourRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Lat == nil || req.Lon == nil {
		writeEngineError(w, r, domain.ErrInvalidStartPoint)
		return
	}
	origin := domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon}

	catalog, err := h.Repo.ListPlaces(r.Context())
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	timeOfDay := h.timeOfDay(req.TimeOfDay)

	tour, err := services.AssembleTour(h.Rand(), origin, timeOfDay, req.RadiusKm, catalog)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	distanceKm, walkMinutes := services.TourSummary(origin, tour.Stops)

	writeJSON(w, r, http.StatusOK, dto.TourResponse{
		Stops:                dto.PlacesFromDomain(tour.Stops),
		TotalDurationMinutes: tour.TotalDurationMinutes,
		TotalDistanceKm:      distanceKm,
		TotalWalkMinutes:     walkMinutes,
	})
}

// Remove deletes one stop from a tour, keeping the rest in order.
func (h *TourHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RemoveStopRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tour := tourFromStops(req.Stops)
	if err := services.RemoveStop(tour, req.Index); err != nil {
		writeError(w, r, http.StatusBadRequest, "index out of range")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.EditResponse{
		Stops:                dto.PlacesFromDomain(tour.Stops),
		TotalDurationMinutes: tour.TotalDurationMinutes,
	})
}

// Replace substitutes a single stop against a candidate set recomputed
// around the original start point, preferring role continuity.
func (h *TourHandler) Replace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ReplaceStopRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Lat == nil || req.Lon == nil {
		writeEngineError(w, r, domain.ErrInvalidStartPoint)
		return
	}
	origin := domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon}

	tour := tourFromStops(req.Stops)
	if req.Index < 0 || req.Index >= tour.Len() {
		writeError(w, r, http.StatusBadRequest, "index out of range")
		return
	}

	catalog, err := h.Repo.ListPlaces(r.Context())
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	candidates := services.FindCandidates(origin, services.BaseRadiusKm, h.timeOfDay(req.TimeOfDay), catalog)

	if err := services.ReplaceStop(h.Rand(), tour, req.Index, candidates); err != nil {
		writeEngineError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.EditResponse{
		Stops:                dto.PlacesFromDomain(tour.Stops),
		TotalDurationMinutes: tour.TotalDurationMinutes,
	})
}

func (h *TourHandler) timeOfDay(override string) domain.TimeOfDay {
	switch domain.TimeOfDay(override) {
	case domain.Morning, domain.Afternoon, domain.Evening:
		return domain.TimeOfDay(override)
	}
	return domain.TimeOfDayForHour(h.Now().Hour())
}

func tourFromStops(stops []dto.PlaceResponse) *domain.Tour {
	tour := &domain.Tour{}
	for _, s := range dto.PlacesToDomain(stops) {
		tour.Add(s)
	}
	return tour
}

// decodeBody enforces the strict JSON body contract: unknown fields are
// rejected and the body must contain exactly one object.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	return true
}
