package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/ovaska/fishframe/internal/api/validation"
	"github.com/ovaska/fishframe/internal/domain"
	"github.com/ovaska/fishframe/internal/service"
	"github.com/ovaska/fishframe/pkg/problem"
)

// WallpaperHandler renders the lock-screen wallpaper PNG.
type WallpaperHandler struct {
	wallpaperService service.WallpaperService
	defaultTimezone  string
}

// NewWallpaperHandler creates a new WallpaperHandler.
func NewWallpaperHandler(wallpaperService service.WallpaperService, defaultTimezone string) *WallpaperHandler {
	return &WallpaperHandler{
		wallpaperService: wallpaperService,
		defaultTimezone:  defaultTimezone,
	}
}

// Get handles GET /v1/wallpaper
// @Summary Render a fishing wallpaper
// @Description Render the personalized weather/fishing lock-screen wallpaper for a coordinate pair.
// @Tags wallpaper
// @Produce png
// @Param lat query number true "Latitude in decimal degrees" minimum(-90) maximum(90)
// @Param lon query number true "Longitude in decimal degrees" minimum(-180) maximum(180)
// @Param w query integer false "Image width in pixels" default(1170) minimum(200) maximum(4000)
// @Param h query integer false "Image height in pixels" default(2532) minimum(200) maximum(4000)
// @Param tz query string false "IANA timezone for local times" example(Europe/Helsinki)
// @Param place query string false "Place name shown on the wallpaper" example(Tampere)
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} problem.Problem "Missing or malformed coordinates"
// @Failure 422 {object} problem.Problem "Out-of-range parameters"
// @Failure 502 {object} problem.Problem "Weather provider unavailable"
// @Router /wallpaper [get]
func (h *WallpaperHandler) Get(w http.ResponseWriter, r *http.Request) {
	lat, latOK := parseFloatParam(r, "lat")
	lon, lonOK := parseFloatParam(r, "lon")
	if !latOK || !lonOK {
		problem.BadRequest("lat and lon are required decimal coordinates").Write(w)
		return
	}

	req := &domain.WallpaperRequest{
		Latitude:  lat,
		Longitude: lon,
		Width:     parseIntParam(r, "w", 0),
		Height:    parseIntParam(r, "h", 0),
		Timezone:  r.URL.Query().Get("tz"),
		Place:     r.URL.Query().Get("place"),
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	req.Location = resolveLocation(req.Timezone, h.defaultTimezone)
	req.Now = time.Now().In(req.Location)

	png, err := h.wallpaperService.Render(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			problem.BadGateway("Weather provider is unavailable").Write(w)
			return
		}
		problem.InternalError("Failed to render wallpaper").Write(w)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=600")
	w.Write(png)
}
