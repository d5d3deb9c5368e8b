package api

import (
	"math/rand"
	"net/http"
	"time"

	"tour-curation-service/internal/api/handlers"
	"tour-curation-service/internal/domain"
	"tour-curation-service/internal/ports"
)

// Deps bundles everything the HTTP layer needs. Handlers stay unaware of
// concrete adapters; main wires the real ones, tests wire fakes.
type Deps struct {
	Repo     ports.PlaceRepository
	Source   ports.POISource
	Geocoder ports.Geocoder
	Curated  []domain.CuratedTour

	// Rand yields a request-scoped random source; Now supplies the clock.
	// Both are optional and default to production behavior.
	Rand func() *rand.Rand
	Now  func() time.Time
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root.
func NewRouter(deps Deps) http.Handler {
	if deps.Rand == nil {
		deps.Rand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	mux := http.NewServeMux()

	tourHandler := &handlers.TourHandler{
		Repo: deps.Repo,
		Rand: deps.Rand,
		Now:  deps.Now,
	}
	discoverHandler := &handlers.DiscoverHandler{
		Source: deps.Source,
		Rand:   deps.Rand,
	}
	geocodeHandler := &handlers.GeocodeHandler{Geocoder: deps.Geocoder}
	placeHandler := &handlers.PlaceHandler{Repo: deps.Repo}
	curatedHandler := &handlers.CuratedHandler{Tours: deps.Curated}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/places", placeHandler.List)
	mux.HandleFunc("/tours", tourHandler.Generate)
	mux.HandleFunc("/tours/curated", curatedHandler.List)
	mux.HandleFunc("/tours/stops/remove", tourHandler.Remove)
	mux.HandleFunc("/tours/stops/replace", tourHandler.Replace)
	mux.HandleFunc("/discover", discoverHandler.Discover)
	mux.HandleFunc("/geocode", geocodeHandler.Geocode)

	return requestIDMiddleware(loggingMiddleware(recoverMiddleware(mux)))
}
