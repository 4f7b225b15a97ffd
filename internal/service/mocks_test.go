package service

import (
	"context"
	"errors"
	"time"

	"github.com/ovaska/fishframe/internal/astro"
	"github.com/ovaska/fishframe/internal/clients"
	"github.com/ovaska/fishframe/internal/domain"
)

// MockAstroProvider is a mock implementation of astro.Provider with a
// synthetic altitude curve.
type MockAstroProvider struct {
	day      astro.Day
	altitude func(time.Time) float64
}

func (m *MockAstroProvider) Day(lat, lon float64, date time.Time) astro.Day {
	return m.day
}

func (m *MockAstroProvider) MoonAltitude(lat, lon float64, at time.Time) float64 {
	if m.altitude == nil {
		return 0
	}
	return m.altitude(at)
}

// MockWeatherClient is a mock implementation of clients.WeatherClient
type MockWeatherClient struct {
	data *clients.ForecastData
	err  error
}

func (m *MockWeatherClient) Forecast(ctx context.Context, lat, lon float64) (*clients.ForecastData, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

// MockWeatherService returns a fixed snapshot.
type MockWeatherService struct {
	snapshot *domain.WeatherSnapshot
	err      error
}

func (m *MockWeatherService) Current(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

// MockOutlookService returns a fixed outlook or an error.
type MockOutlookService struct {
	outlook *domain.OutlookText
	err     error
}

func (m *MockOutlookService) Generate(ctx context.Context, place string, weather *domain.WeatherSnapshot, solunar *domain.SolunarSnapshot, activity *domain.ActivityResult) (*domain.OutlookText, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.outlook, nil
}

// MockRenderer captures the data passed to Render.
type MockRenderer struct {
	data *domain.WallpaperData
	out  []byte
	err  error
}

func (m *MockRenderer) Render(data *domain.WallpaperData) ([]byte, error) {
	m.data = data
	if m.err != nil {
		return nil, m.err
	}
	if m.out == nil {
		return []byte("png"), nil
	}
	return m.out, nil
}

var errMockUpstream = errors.New("mock upstream failure")
