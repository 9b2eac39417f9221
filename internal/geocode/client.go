package geocode

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrNotFound means the provider answered but had no candidate.
	ErrNotFound = errors.New("address not found")
	// ErrUnconfigured means no provider credential was supplied at startup.
	ErrUnconfigured = errors.New("mapbox token not configured")
)

// Result is the single best-match candidate for a forward-geocoding lookup.
type Result struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
}

// Resolver turns free-text addresses into coordinates.
type Resolver interface {
	Resolve(address string) (*Result, error)
}

const defaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// The service only covers Paris, so lookups are pinned to France and biased
// toward the city centre.
const (
	countryFilter = "FR"
	proximityBias = "2.3522,48.8566" // lon,lat
)

// Options configures a Client. Zero values fall back to the production
// endpoint and a 5 second timeout.
type Options struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// Client calls the Mapbox Geocoding v5 API. One request per lookup, one
// candidate per request, no retries.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 5 * time.Second
	}
	return &Client{
		token:   opts.Token,
		baseURL: opts.BaseURL,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

// mapboxResponse mirrors the subset of the provider payload we read.
// Coordinates arrive in (lon, lat) order.
type mapboxResponse struct {
	Features []struct {
		PlaceName string `json:"place_name"`
		Geometry  struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func (c *Client) Resolve(address string) (*Result, error) {
	if c.token == "" {
		return nil, ErrUnconfigured
	}

	params := url.Values{}
	params.Set("access_token", c.token)
	params.Set("country", countryFilter)
	params.Set("limit", "1")
	params.Set("proximity", proximityBias)

	lookupURL := fmt.Sprintf("%s/%s.json?%s", c.baseURL, url.PathEscape(address), params.Encode())

	resp, err := c.httpClient.Get(lookupURL)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("geocoding request failed: upstream status %d", resp.StatusCode)
	}

	var payload mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geocoding response malformed: %w", err)
	}

	if len(payload.Features) == 0 {
		return nil, ErrNotFound
	}

	feature := payload.Features[0]
	if len(feature.Geometry.Coordinates) < 2 {
		return nil, fmt.Errorf("geocoding response malformed: coordinates missing")
	}

	name := feature.PlaceName
	if name == "" {
		name = address
	}

	return &Result{
		Lat:  feature.Geometry.Coordinates[1],
		Lon:  feature.Geometry.Coordinates[0],
		Name: name,
	}, nil
}
