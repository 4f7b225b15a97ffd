package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ovaska/fishframe/internal/clients"
	"github.com/ovaska/fishframe/internal/domain"
	"github.com/ovaska/fishframe/pkg/problem"
)

const (
	defaultSearchCount = 5
	maxSearchCount     = 10
)

// LocationHandler backs the location picker: free-text search resolving to
// coordinates, each match carrying a ready-to-use wallpaper URL.
type LocationHandler struct {
	geocoding     clients.GeocodingClient
	publicBaseURL string
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(geocoding clients.GeocodingClient, publicBaseURL string) *LocationHandler {
	return &LocationHandler{
		geocoding:     geocoding,
		publicBaseURL: publicBaseURL,
	}
}

// LocationsResponse is the location search response body.
// @Description Location search results.
type LocationsResponse struct {
	Results []domain.LocationMatch `json:"results"`
}

// Search handles GET /v1/locations
// @Summary Search places
// @Description Geocode a free-text place name into coordinate candidates for the location picker.
// @Tags locations
// @Produce json
// @Param q query string true "Place name to search for" example(Tampere)
// @Param count query integer false "Maximum number of results" default(5) minimum(1) maximum(10)
// @Success 200 {object} LocationsResponse "Matching places"
// @Failure 400 {object} problem.Problem "Missing query"
// @Failure 502 {object} problem.Problem "Geocoding provider unavailable"
// @Router /locations [get]
func (h *LocationHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		problem.BadRequest("q is required").Write(w)
		return
	}

	count := parseIntParam(r, "count", defaultSearchCount)
	if count < 1 || count > maxSearchCount {
		count = defaultSearchCount
	}

	locations, err := h.geocoding.Search(r.Context(), query, count)
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			problem.BadGateway("Geocoding provider is unavailable").Write(w)
			return
		}
		problem.InternalError("Failed to search locations").Write(w)
		return
	}

	resp := LocationsResponse{Results: make([]domain.LocationMatch, 0, len(locations))}
	for _, loc := range locations {
		resp.Results = append(resp.Results, domain.LocationMatch{
			Location:     loc,
			WallpaperURL: h.wallpaperURL(loc),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *LocationHandler) wallpaperURL(loc domain.Location) string {
	params := url.Values{}
	params.Add("lat", fmt.Sprintf("%.4f", loc.Latitude))
	params.Add("lon", fmt.Sprintf("%.4f", loc.Longitude))
	if loc.Timezone != "" {
		params.Add("tz", loc.Timezone)
	}
	params.Add("place", loc.Name)
	return h.publicBaseURL + "/v1/wallpaper?" + params.Encode()
}
