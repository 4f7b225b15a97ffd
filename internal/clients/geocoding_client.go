package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ovaska/fishframe/internal/domain"
)

// GeocodingClient resolves free-text place names to coordinates.
type GeocodingClient interface {
	Search(ctx context.Context, query string, count int) ([]domain.Location, error)
}

type geocodingClient struct {
	baseURL string
	client  *http.Client
}

// NewGeocodingClient creates a GeocodingClient backed by the Open-Meteo
// geocoding API.
func NewGeocodingClient(baseURL string) GeocodingClient {
	return &geocodingClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

func (c *geocodingClient) Search(ctx context.Context, query string, count int) ([]domain.Location, error) {
	params := url.Values{}
	params.Add("name", query)
	params.Add("count", strconv.Itoa(count))
	params.Add("language", "en")
	params.Add("format", "json")

	reqURL := c.baseURL + "/v1/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: geocoding returned status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var payload geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}

	// No matches is an empty list, not an error.
	locations := make([]domain.Location, 0, len(payload.Results))
	for _, r := range payload.Results {
		locations = append(locations, domain.Location{
			Name:      r.Name,
			Country:   r.Country,
			Admin1:    r.Admin1,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Timezone:  r.Timezone,
		})
	}
	return locations, nil
}
