package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tour-curation-service/internal/domain"
)

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// FetchPOIs performs one bounded-radius spatial query. An empty category list
// returns no places without a network call (unrecognized moods degrade to
// "no candidates").
func (c *Client) FetchPOIs(ctx context.Context, center domain.Coordinates, radiusMeters int, categories []string) ([]domain.Place, error) {
	if len(categories) == 0 {
		return []domain.Place{}, nil
	}

	query := buildQuery(center, radiusMeters, categories)

	resp, err := c.doWithRetry(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch POIs: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch POIs: status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	var decoded overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("fetch POIs: decode response: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	return mapElements(decoded.Elements), nil
}

// mapElements validates raw provider elements into typed places. Elements
// without coordinates are dropped; a missing name gets a placeholder label.
func mapElements(elements []overpassElement) []domain.Place {
	pois := make([]domain.Place, 0, len(elements))
	for _, el := range elements {
		if el.Lat == 0 && el.Lon == 0 {
			continue
		}

		name := el.Tags["name"]
		if name == "" {
			name = "Unbenannter Ort"
		}

		category := el.Tags["amenity"]
		if category == "" {
			category = "unknown"
		}

		pois = append(pois, domain.Place{
			ID:          strconv.FormatInt(el.ID, 10),
			Name:        name,
			Category:    category,
			Coordinates: domain.Coordinates{Lat: el.Lat, Lon: el.Lon},
		})
	}
	return pois
}

func (c *Client) newRequest(ctx context.Context, query string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// doWithRetry issues the query, retrying exactly once on HTTP 429 after a
// fixed backoff while respecting context cancellation.
func (c *Client) doWithRetry(ctx context.Context, query string) (*http.Response, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := c.newRequest(ctx, query)
		if err != nil {
			return nil, err
		}

		resp, err := c.session.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt > 1 {
			return resp, nil
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		timer := time.NewTimer(rateLimitBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
