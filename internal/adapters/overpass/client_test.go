package overpass

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tour-curation-service/internal/domain"
)

func elementJSON(id int, name, amenity string, lat, lon float64) string {
	tags := ""
	if name != "" {
		tags += fmt.Sprintf("%q:%q", "name", name)
	}
	if amenity != "" {
		if tags != "" {
			tags += ","
		}
		tags += fmt.Sprintf("%q:%q", "amenity", amenity)
	}
	return fmt.Sprintf(`{"id":%d,"lat":%g,"lon":%g,"tags":{%s}}`, id, lat, lon, tags)
}

func poiResponse(elements ...string) string {
	return fmt.Sprintf(`{"elements":[%s]}`, strings.Join(elements, ","))
}

type fakeCache struct {
	entries map[string][]domain.Place
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]domain.Place{}}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]domain.Place, bool) {
	pois, ok := f.entries[key]
	return pois, ok
}

func (f *fakeCache) Put(_ context.Context, key string, pois []domain.Place) {
	f.entries[key] = pois
}

func TestFetchByMoodMapsElements(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, poiResponse(
			elementJSON(101, "Café Fontana", "cafe", 49.7968, 9.9312),
			elementJSON(102, "", "bar", 49.7945, 9.9293),
			elementJSON(103, "Weinstube", "", 49.7953, 9.9348),
			elementJSON(104, "Nullinsel", "pub", 0, 0),
		))
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	pois, err := client.FetchByMood(context.Background(), domain.MoodGenuss, domain.Coordinates{Lat: 49.79, Lon: 9.93})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pois) != 3 {
		t.Fatalf("expected 3 POIs (zero-coordinate element dropped), got %d", len(pois))
	}
	if pois[0].ID != "101" || pois[0].Name != "Café Fontana" || pois[0].Category != "cafe" {
		t.Fatalf("unexpected first POI: %+v", pois[0])
	}
	if pois[1].Name != "Unbenannter Ort" {
		t.Fatalf("expected placeholder name for unnamed POI, got %q", pois[1].Name)
	}
	if pois[2].Category != "unknown" {
		t.Fatalf("expected fallback category, got %q", pois[2].Category)
	}
}

func TestFetchByMoodUsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, poiResponse(
			elementJSON(1, "A", "park", 49.1, 9.1),
			elementJSON(2, "B", "garden", 49.2, 9.2),
			elementJSON(3, "C", "viewpoint", 49.3, 9.3),
		))
	}))
	defer srv.Close()

	client := New(srv.URL, newFakeCache())
	center := domain.Coordinates{Lat: 49.79, Lon: 9.93}

	if _, err := client.FetchByMood(context.Background(), domain.MoodNatur, center); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.FetchByMood(context.Background(), domain.MoodNatur, center); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hits != 1 {
		t.Fatalf("expected a single upstream call, got %d", hits)
	}
}

func TestFetchByMoodRetriesOnceOnRateLimit(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, poiResponse(
			elementJSON(1, "A", "museum", 49.1, 9.1),
			elementJSON(2, "B", "gallery", 49.2, 9.2),
			elementJSON(3, "C", "theatre", 49.3, 9.3),
		))
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	pois, err := client.FetchByMood(context.Background(), domain.MoodKultur, domain.Coordinates{Lat: 49.79, Lon: 9.93})
	if err != nil {
		t.Fatalf("expected the retry to succeed, got %v", err)
	}
	if len(pois) != 3 {
		t.Fatalf("expected 3 POIs, got %d", len(pois))
	}
	if hits != 2 {
		t.Fatalf("expected exactly 2 upstream calls, got %d", hits)
	}
}

func TestFetchByMoodGivesUpAfterSecondRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.FetchByMood(context.Background(), domain.MoodKultur, domain.Coordinates{Lat: 49.79, Lon: 9.93})
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestFetchByMoodEscalatesRadius(t *testing.T) {
	var radii []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		query := string(body)

		switch {
		case strings.Contains(query, "around:2000,"):
			radii = append(radii, "2000")
			fmt.Fprint(w, poiResponse(
				elementJSON(1, "A", "cafe", 49.1, 9.1),
			))
		case strings.Contains(query, "around:4000,"):
			radii = append(radii, "4000")
			fmt.Fprint(w, poiResponse(
				elementJSON(1, "A", "cafe", 49.1, 9.1),
				elementJSON(2, "B", "bar", 49.2, 9.2),
				elementJSON(3, "C", "pub", 49.3, 9.3),
			))
		default:
			t.Errorf("unexpected query: %s", query)
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	pois, err := client.FetchByMood(context.Background(), domain.MoodGenuss, domain.Coordinates{Lat: 49.79, Lon: 9.93})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pois) != 3 {
		t.Fatalf("expected 3 POIs after escalation, got %d", len(pois))
	}
	if len(radii) != 2 || radii[0] != "2000" || radii[1] != "4000" {
		t.Fatalf("expected queries at 2000 then 4000 m, got %v", radii)
	}
}

func TestFetchByMoodInsufficientAfterEscalation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, poiResponse(
			elementJSON(1, "A", "cafe", 49.1, 9.1),
		))
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.FetchByMood(context.Background(), domain.MoodGenuss, domain.Coordinates{Lat: 49.79, Lon: 9.93})
	if !errors.Is(err, domain.ErrInsufficientCandidates) {
		t.Fatalf("expected ErrInsufficientCandidates, got %v", err)
	}
}

func TestFetchByMoodUnknownMoodSkipsNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.FetchByMood(context.Background(), "Abenteuer", domain.Coordinates{Lat: 49.79, Lon: 9.93})
	if !errors.Is(err, domain.ErrInsufficientCandidates) {
		t.Fatalf("expected ErrInsufficientCandidates, got %v", err)
	}
	if hits != 0 {
		t.Fatalf("expected no upstream calls for an unknown mood, got %d", hits)
	}
}

func TestFetchPOIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	center := domain.Coordinates{Lat: 49.79, Lon: 9.93}

	_, err := client.FetchPOIs(context.Background(), center, InitialRadiusMeters, []string{"cafe"})
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable on 500, got %v", err)
	}
}

func TestFetchPOIsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.FetchPOIs(context.Background(), domain.Coordinates{}, InitialRadiusMeters, []string{"cafe"})
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable on malformed body, got %v", err)
	}
}
