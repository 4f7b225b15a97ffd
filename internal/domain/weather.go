package domain

import "time"

// PressureTrend classifies barometric pressure change over the preceding
// three hours.
// @Description Pressure trend: rising, falling or stable.
type PressureTrend string

const (
	PressureRising  PressureTrend = "rising"
	PressureFalling PressureTrend = "falling"
	PressureStable  PressureTrend = "stable"
)

// WeatherSnapshot holds current conditions at a location together with the
// precomputed pressure trend. Valid only at the instant it was fetched.
// @Description Current weather conditions.
type WeatherSnapshot struct {
	// Observation time
	ObservedAt time.Time `json:"observed_at" example:"2024-06-01T12:00:00Z"`
	// Air temperature in °C
	TemperatureC float64 `json:"temperature_c" example:"18.4"`
	// Wind speed in km/h
	WindSpeedKmh float64 `json:"wind_speed_kmh" example:"12.5"`
	// Wind direction in degrees (meteorological, wind blowing from)
	WindDirectionDeg float64 `json:"wind_direction_deg" example:"225"`
	// Total cloud cover percentage 0-100
	CloudCoverPct int `json:"cloud_cover_pct" example:"75"`
	// Surface pressure in hPa
	PressureHpa float64 `json:"pressure_hpa" example:"1013.2"`
	// Pressure trend over the last 3 hours
	PressureTrend PressureTrend `json:"pressure_trend" example:"stable"`
}
