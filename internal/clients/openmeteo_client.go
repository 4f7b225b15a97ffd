package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ovaska/fishframe/internal/domain"
)

// CurrentConditions are the normalized current weather values.
type CurrentConditions struct {
	Time             time.Time
	TemperatureC     float64
	WindSpeedKmh     float64
	WindDirectionDeg float64
	CloudCoverPct    int
	PressureHpa      float64
}

// ForecastData is the normalized Open-Meteo response: current conditions
// plus the hourly surface-pressure series (chronological) used for the
// pressure trend.
type ForecastData struct {
	Current        CurrentConditions
	HourlyTimes    []time.Time
	HourlyPressure []float64
}

// WeatherClient fetches weather data for a coordinate pair.
type WeatherClient interface {
	Forecast(ctx context.Context, lat, lon float64) (*ForecastData, error)
}

type openMeteoClient struct {
	baseURL string
	client  *http.Client
}

// NewOpenMeteoClient creates a WeatherClient backed by the Open-Meteo
// forecast API.
func NewOpenMeteoClient(baseURL string) WeatherClient {
	return &openMeteoClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// openMeteoResponse mirrors the subset of the Open-Meteo JSON we consume.
// timeformat=unixtime keeps timestamps trivially parseable.
type openMeteoResponse struct {
	Current struct {
		Time            int64   `json:"time"`
		Temperature2m   float64 `json:"temperature_2m"`
		WindSpeed10m    float64 `json:"wind_speed_10m"`
		WindDirection   float64 `json:"wind_direction_10m"`
		CloudCover      int     `json:"cloud_cover"`
		SurfacePressure float64 `json:"surface_pressure"`
	} `json:"current"`
	Hourly struct {
		Time            []int64   `json:"time"`
		SurfacePressure []float64 `json:"surface_pressure"`
	} `json:"hourly"`
}

func (c *openMeteoClient) Forecast(ctx context.Context, lat, lon float64) (*ForecastData, error) {
	params := url.Values{}
	params.Add("latitude", fmt.Sprintf("%.4f", lat))
	params.Add("longitude", fmt.Sprintf("%.4f", lon))
	params.Add("current", "temperature_2m,wind_speed_10m,wind_direction_10m,cloud_cover,surface_pressure")
	params.Add("hourly", "surface_pressure")
	params.Add("past_days", "1")
	params.Add("forecast_days", "1")
	params.Add("timeformat", "unixtime")
	params.Add("timezone", "UTC")

	reqURL := c.baseURL + "/v1/forecast?" + params.Encode()

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
		return nil, fmt.Errorf("%w: open-meteo returned status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}

	return normalizeForecast(&payload), nil
}

func normalizeForecast(payload *openMeteoResponse) *ForecastData {
	data := &ForecastData{
		Current: CurrentConditions{
			Time:             time.Unix(payload.Current.Time, 0).UTC(),
			TemperatureC:     payload.Current.Temperature2m,
			WindSpeedKmh:     payload.Current.WindSpeed10m,
			WindDirectionDeg: payload.Current.WindDirection,
			CloudCoverPct:    payload.Current.CloudCover,
			PressureHpa:      payload.Current.SurfacePressure,
		},
	}

	n := len(payload.Hourly.Time)
	if len(payload.Hourly.SurfacePressure) < n {
		n = len(payload.Hourly.SurfacePressure)
	}
	for i := 0; i < n; i++ {
		data.HourlyTimes = append(data.HourlyTimes, time.Unix(payload.Hourly.Time[i], 0).UTC())
		data.HourlyPressure = append(data.HourlyPressure, payload.Hourly.SurfacePressure[i])
	}

	return data
}
