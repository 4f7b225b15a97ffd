package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ovaska/fishframe/internal/domain"
	"github.com/ovaska/fishframe/internal/service"
	"github.com/ovaska/fishframe/pkg/problem"
)

// ActivityHandler combines current weather with the solunar picture into the
// scored activity response.
type ActivityHandler struct {
	weatherService  service.WeatherService
	solunarService  service.SolunarService
	activityService service.ActivityService
	defaultTimezone string
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(
	weatherService service.WeatherService,
	solunarService service.SolunarService,
	activityService service.ActivityService,
	defaultTimezone string,
) *ActivityHandler {
	return &ActivityHandler{
		weatherService:  weatherService,
		solunarService:  solunarService,
		activityService: activityService,
		defaultTimezone: defaultTimezone,
	}
}

// Get handles GET /v1/activity
// @Summary Get the current pike activity score
// @Description Fetch current weather, compute the solunar picture and score the pike activity index for this instant.
// @Tags activity
// @Produce json
// @Param lat query number true "Latitude in decimal degrees" minimum(-90) maximum(90)
// @Param lon query number true "Longitude in decimal degrees" minimum(-180) maximum(180)
// @Param tz query string false "IANA timezone for local times" example(Europe/Helsinki)
// @Success 200 {object} domain.ActivityResponse "Activity score with weather and next major period"
// @Failure 400 {object} problem.Problem "Missing or malformed coordinates"
// @Failure 502 {object} problem.Problem "Weather provider unavailable"
// @Router /activity [get]
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	lat, latOK := parseFloatParam(r, "lat")
	lon, lonOK := parseFloatParam(r, "lon")
	if !latOK || !lonOK {
		problem.BadRequest("lat and lon are required decimal coordinates").Write(w)
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		problem.BadRequest("coordinates out of range").Write(w)
		return
	}

	loc := resolveLocation(r.URL.Query().Get("tz"), h.defaultTimezone)
	now := time.Now().In(loc)

	weather, err := h.weatherService.Current(r.Context(), lat, lon)
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			problem.BadGateway("Weather provider is unavailable").Write(w)
			return
		}
		problem.InternalError("Failed to fetch weather").Write(w)
		return
	}

	solunar := h.solunarService.Compute(lat, lon, now)
	activity := h.activityService.Score(weather, solunar, now)

	resp := &domain.ActivityResponse{
		Weather:  weather,
		Activity: activity,
	}
	if next, ok := service.NextPeriod(solunar.MajorPeriods, now); ok {
		resp.NextMajor = &next
		if next.Status == domain.PeriodOngoing {
			resp.NextMajorCountdown = "now"
		} else {
			resp.NextMajorCountdown = service.FormatCountdown(now, next.Period.Start)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
