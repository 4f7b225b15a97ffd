package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ovaska/fishframe/internal/api/validation"
	"github.com/ovaska/fishframe/internal/domain"
	"github.com/ovaska/fishframe/internal/service"
	"github.com/ovaska/fishframe/pkg/problem"
)

// SolunarHandler exposes the solunar computation as JSON.
type SolunarHandler struct {
	solunarService  service.SolunarService
	defaultTimezone string
}

// NewSolunarHandler creates a new SolunarHandler.
func NewSolunarHandler(solunarService service.SolunarService, defaultTimezone string) *SolunarHandler {
	return &SolunarHandler{
		solunarService:  solunarService,
		defaultTimezone: defaultTimezone,
	}
}

// Get handles GET /v1/solunar
// @Summary Get the solunar picture for a day
// @Description Compute moon phase, lunar transit derived major periods, and moonrise/moonset minor periods for a location and reference day.
// @Tags solunar
// @Produce json
// @Param lat query number true "Latitude in decimal degrees" minimum(-90) maximum(90)
// @Param lon query number true "Longitude in decimal degrees" minimum(-180) maximum(180)
// @Param date query string false "Reference day (YYYY-MM-DD), defaults to today in tz" example(2024-06-01)
// @Param tz query string false "IANA timezone for the reference day" example(Europe/Helsinki)
// @Success 200 {object} domain.SolunarSnapshot "Solunar snapshot"
// @Failure 400 {object} problem.Problem "Missing or malformed coordinates"
// @Failure 422 {object} problem.Problem "Out-of-range parameters"
// @Router /solunar [get]
func (h *SolunarHandler) Get(w http.ResponseWriter, r *http.Request) {
	lat, latOK := parseFloatParam(r, "lat")
	lon, lonOK := parseFloatParam(r, "lon")
	if !latOK || !lonOK {
		problem.BadRequest("lat and lon are required decimal coordinates").Write(w)
		return
	}

	req := &domain.SolunarRequest{
		Latitude:  lat,
		Longitude: lon,
		Timezone:  r.URL.Query().Get("tz"),
		Date:      r.URL.Query().Get("date"),
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	loc := resolveLocation(req.Timezone, h.defaultTimezone)
	date := time.Now().In(loc)
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, loc)
		if err != nil {
			problem.BadRequest("date must match YYYY-MM-DD").Write(w)
			return
		}
		date = parsed
	}

	snapshot := h.solunarService.Compute(lat, lon, date)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}
