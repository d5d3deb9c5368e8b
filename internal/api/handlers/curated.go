package handlers

import (
	"net/http"

	"tour-curation-service/internal/api/dto"
	"tour-curation-service/internal/domain"
)

// CuratedHandler serves the hand-built tour catalog loaded at startup.
type CuratedHandler struct {
	Tours []domain.CuratedTour
}

func (h *CuratedHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListCuratedToursResponse{
		Tours: make([]dto.CuratedTourResponse, 0, len(h.Tours)),
	}
	for _, t := range h.Tours {
		stops := make([]dto.CuratedStopResponse, 0, len(t.Stops))
		for _, s := range t.Stops {
			stops = append(stops, dto.CuratedStopResponse{
				Name:        s.Name,
				Category:    s.Category,
				Lat:         s.Coordinates.Lat,
				Lon:         s.Coordinates.Lon,
				Duration:    s.Duration,
				Description: s.Description,
			})
		}
		res.Tours = append(res.Tours, dto.CuratedTourResponse{
			Title:      t.Title,
			Duration:   t.Duration,
			Difficulty: t.Difficulty,
			Stops:      stops,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
