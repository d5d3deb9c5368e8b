package overpass

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tour-curation-service/internal/domain"
	"tour-curation-service/internal/platform/obs"
	"tour-curation-service/internal/ports"
)

const (
	// DefaultBaseURL is the public Overpass interpreter endpoint.
	DefaultBaseURL = "https://overpass-api.de/api/interpreter"

	// InitialRadiusMeters is the first fetch radius around the start point.
	InitialRadiusMeters = 2000
	// EscalatedRadiusMeters is tried once when the initial fetch is too sparse.
	EscalatedRadiusMeters = 4000
	// minUsablePOIs is the smallest result set the tour chain can work with.
	minUsablePOIs = 3

	rateLimitBackoff = 1500 * time.Millisecond
)

// Client fetches points of interest from the Overpass API.
//
// It coordinates:
//   - Mood to amenity-category mapping
//   - Bounded-radius spatial queries
//   - A single retry on rate limiting
//   - Radius escalation on sparse results
//   - Process-lifetime memoization of results
type Client struct {
	session *http.Client
	baseURL string
	cache   ports.POICache
}

// New creates a Client. cache may be nil to disable memoization.
func New(baseURL string, cache ports.POICache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		cache:   cache,
	}
}

// FetchByMood returns POIs around center matching the mood's category
// allow-list, escalating the search radius once when the initial result is too
// sparse. Each radius caches under its own key. A still-sparse result is a
// domain-level outcome, not a hard error.
func (c *Client) FetchByMood(ctx context.Context, mood string, center domain.Coordinates) (pois []domain.Place, err error) {
	defer obs.Time(ctx, "overpass.FetchByMood")(&err)

	categories := domain.CategoriesForMood(mood)

	pois, err = c.fetchCached(ctx, mood, center, InitialRadiusMeters, categories)
	if err != nil {
		return nil, err
	}

	if len(pois) < minUsablePOIs {
		pois, err = c.fetchCached(ctx, mood, center, EscalatedRadiusMeters, categories)
		if err != nil {
			return nil, err
		}
	}

	if len(pois) < minUsablePOIs {
		return nil, fmt.Errorf("fetch by mood %q: %d usable POIs within %d m: %w",
			mood, len(pois), EscalatedRadiusMeters, domain.ErrInsufficientCandidates)
	}

	return pois, nil
}

func (c *Client) fetchCached(ctx context.Context, mood string, center domain.Coordinates, radiusMeters int, categories []string) ([]domain.Place, error) {
	key := cacheKey(mood, center, radiusMeters)

	if c.cache != nil {
		if pois, hit := c.cache.Get(ctx, key); hit {
			return pois, nil
		}
	}

	pois, err := c.FetchPOIs(ctx, center, radiusMeters, categories)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Put(ctx, key, pois)
	}

	return pois, nil
}

// cacheKey builds the composite memoization key for one spatial query.
func cacheKey(mood string, center domain.Coordinates, radiusMeters int) string {
	return fmt.Sprintf("%s-%g-%g-%d", mood, center.Lat, center.Lon, radiusMeters)
}

// buildQuery renders the Overpass QL statement for a bounded amenity search.
func buildQuery(center domain.Coordinates, radiusMeters int, categories []string) string {
	pattern := strings.Join(categories, "|")
	return fmt.Sprintf(`
[out:json][timeout:10];
node["amenity"~"%s"]
(around:%d,%g,%g);
out body 50;
`, pattern, radiusMeters, center.Lat, center.Lon)
}
