package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"tour-curation-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeEngineError reports an expected curation outcome to the client.
// Per the response contract these are signaled in the payload with a success
// status and a localized message, not via failure status codes.
func writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("generation failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)

	msg := "Fehler bei der Tour-Generierung."
	switch {
	case errors.Is(err, domain.ErrInsufficientCandidates):
		msg = "Hier gibt es gerade zu wenig passende Orte in deiner Nähe."
	case errors.Is(err, domain.ErrNoReplacement):
		msg = "Kein Ersatz verfügbar"
	case errors.Is(err, domain.ErrInvalidStartPoint):
		msg = "Adresse nicht gefunden."
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		msg = "Fehler bei der Generierung."
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"error": msg})
}
