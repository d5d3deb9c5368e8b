package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"tour-curation-service/internal/api/dto"
	"tour-curation-service/internal/domain"
)

type stubGeocoder struct {
	coords domain.Coordinates
	found  bool
	err    error
}

func (s stubGeocoder) Geocode(context.Context, string) (domain.Coordinates, bool, error) {
	return s.coords, s.found, s.err
}

func TestGeocode(t *testing.T) {
	h := &GeocodeHandler{Geocoder: stubGeocoder{
		coords: domain.Coordinates{Lat: 49.7945, Lon: 9.9293},
		found:  true,
	}}

	rec := postJSON(t, h.Geocode, `{"query":"Würzburg Marktplatz"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var res dto.GeocodeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Lat != 49.7945 || res.Lon != 9.9293 {
		t.Fatalf("unexpected coordinates: %+v", res)
	}
}

func TestGeocodeNoMatch(t *testing.T) {
	h := &GeocodeHandler{Geocoder: stubGeocoder{found: false}}

	rec := postJSON(t, h.Geocode, `{"query":"nirgendwo"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if msg := payloadError(t, rec); msg != "Adresse nicht gefunden." {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestGeocodeBlankQuery(t *testing.T) {
	h := &GeocodeHandler{Geocoder: stubGeocoder{found: true}}

	rec := postJSON(t, h.Geocode, `{"query":"  "}`)
	if msg := payloadError(t, rec); msg != "Adresse nicht gefunden." {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestGeocodeUpstreamFailure(t *testing.T) {
	h := &GeocodeHandler{Geocoder: stubGeocoder{err: domain.ErrUpstreamUnavailable}}

	rec := postJSON(t, h.Geocode, `{"query":"Würzburg"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if msg := payloadError(t, rec); msg != "Fehler bei der Generierung." {
		t.Fatalf("unexpected message: %q", msg)
	}
}
