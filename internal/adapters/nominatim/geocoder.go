package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tour-curation-service/internal/domain"
)

// DefaultBaseURL is the public Nominatim search endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// Geocoder resolves free-text addresses via the Nominatim API.
type Geocoder struct {
	session *http.Client
	baseURL string
}

func New(baseURL string) *Geocoder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Geocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

// Nominatim returns lat/lon as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns the best-match coordinates for the query, or false when the
// provider has no match.
func (g *Geocoder) Geocode(ctx context.Context, query string) (domain.Coordinates, bool, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s", g.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.session.Do(req)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, false, fmt.Errorf("geocode: status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode: decode response: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	if len(results) == 0 {
		return domain.Coordinates{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode: parse lat %q: %w", results[0].Lat, domain.ErrUpstreamUnavailable)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode: parse lon %q: %w", results[0].Lon, domain.ErrUpstreamUnavailable)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true, nil
}
