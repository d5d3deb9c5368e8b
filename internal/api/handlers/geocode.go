package handlers

import (
	"net/http"
	"strings"

	"tour-curation-service/internal/api/dto"
	"tour-curation-service/internal/domain"
	"tour-curation-service/internal/ports"
)

// GeocodeHandler resolves a free-text address into start coordinates.
type GeocodeHandler struct {
	Geocoder ports.Geocoder
}

func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.GeocodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeEngineError(w, r, domain.ErrInvalidStartPoint)
		return
	}

	coords, found, err := h.Geocoder.Geocode(r.Context(), req.Query)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	if !found {
		writeEngineError(w, r, domain.ErrInvalidStartPoint)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.GeocodeResponse{Lat: coords.Lat, Lon: coords.Lon})
}
