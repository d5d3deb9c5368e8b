package nominatim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"tour-curation-service/internal/domain"
)

func TestGeocodeBestMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Würzburg Marktplatz" {
			t.Errorf("expected query to be forwarded, got %q", got)
		}
		fmt.Fprint(w, `[{"lat":"49.7945","lon":"9.9293"},{"lat":"1","lon":"1"}]`)
	}))
	defer srv.Close()

	g := New(srv.URL)
	coords, found, err := g.Geocode(context.Background(), "Würzburg Marktplatz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected a match")
	}
	if math.Abs(coords.Lat-49.7945) > 1e-9 || math.Abs(coords.Lon-9.9293) > 1e-9 {
		t.Fatalf("expected first result's coordinates, got %+v", coords)
	}
}

func TestGeocodeNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	g := New(srv.URL)
	_, found, err := g.Geocode(context.Background(), "nirgendwo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected no match")
	}
}

func TestGeocodeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := New(srv.URL)
	_, _, err := g.Geocode(context.Background(), "Würzburg")
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestGeocodeUnparsableCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"lat":"not-a-number","lon":"9.9293"}]`)
	}))
	defer srv.Close()

	g := New(srv.URL)
	_, _, err := g.Geocode(context.Background(), "Würzburg")
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
