package service

import (
	"context"
	"time"

	"github.com/ovaska/fishframe/internal/clients"
	"github.com/ovaska/fishframe/internal/domain"
)

// WeatherService fetches current conditions and derives the pressure trend.
type WeatherService interface {
	Current(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error)
}

type weatherService struct {
	client clients.WeatherClient
}

// NewWeatherService creates a WeatherService backed by the given client.
func NewWeatherService(client clients.WeatherClient) WeatherService {
	return &weatherService{client: client}
}

func (s *weatherService) Current(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error) {
	data, err := s.client.Forecast(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	samples := pressureSamplesUpTo(data.HourlyTimes, data.HourlyPressure, data.Current.Time)

	return &domain.WeatherSnapshot{
		ObservedAt:       data.Current.Time,
		TemperatureC:     data.Current.TemperatureC,
		WindSpeedKmh:     data.Current.WindSpeedKmh,
		WindDirectionDeg: data.Current.WindDirectionDeg,
		CloudCoverPct:    data.Current.CloudCoverPct,
		PressureHpa:      data.Current.PressureHpa,
		PressureTrend:    ClassifyPressureTrend(samples),
	}, nil
}

// pressureSamplesUpTo trims the hourly series to samples at or before now so
// the trend compares the present against actual history, not forecast hours.
func pressureSamplesUpTo(times []time.Time, pressures []float64, now time.Time) []float64 {
	n := len(times)
	if len(pressures) < n {
		n = len(pressures)
	}

	cut := 0
	for i := 0; i < n; i++ {
		if !times[i].After(now) {
			cut = i + 1
		}
	}
	return pressures[:cut]
}
