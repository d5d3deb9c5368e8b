package handlers

import (
	"log"
	"net/http"

	"tour-curation-service/internal/api/dto"
	"tour-curation-service/internal/ports"
)

// PlaceHandler exposes read-only catalog retrieval endpoints.
type PlaceHandler struct {
	Repo ports.PlaceRepository
}

func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	places, err := h.Repo.ListPlaces(r.Context())
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListPlacesResponse{
		Places: dto.PlacesFromDomain(places),
	})
}
