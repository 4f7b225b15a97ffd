package handler

import (
	"net/http"
	"strconv"
	"time"
)

// parseFloatParam parses a required float query parameter.
func parseFloatParam(r *http.Request, name string) (float64, bool) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// resolveLocation loads the request timezone, falling back to the default.
// Validation has already checked the tz parameter, so failures only happen
// for a broken default and fall back to UTC.
func resolveLocation(tz, defaultTz string) *time.Location {
	if tz == "" {
		tz = defaultTz
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
