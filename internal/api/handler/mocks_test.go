package handler

import (
	"context"
	"time"

	"github.com/ovaska/fishframe/internal/domain"
)

// MockWallpaperService is a mock implementation of service.WallpaperService
type MockWallpaperService struct {
	renderFunc func(ctx context.Context, req *domain.WallpaperRequest) ([]byte, error)
}

func (m *MockWallpaperService) Render(ctx context.Context, req *domain.WallpaperRequest) ([]byte, error) {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, req)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

// MockWeatherService is a mock implementation of service.WeatherService
type MockWeatherService struct {
	currentFunc func(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error)
}

func (m *MockWeatherService) Current(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error) {
	if m.currentFunc != nil {
		return m.currentFunc(ctx, lat, lon)
	}
	return &domain.WeatherSnapshot{
		ObservedAt:    time.Now(),
		PressureTrend: domain.PressureStable,
	}, nil
}

// MockSolunarService is a mock implementation of service.SolunarService
type MockSolunarService struct {
	computeFunc func(lat, lon float64, date time.Time) *domain.SolunarSnapshot
}

func (m *MockSolunarService) Compute(lat, lon float64, date time.Time) *domain.SolunarSnapshot {
	if m.computeFunc != nil {
		return m.computeFunc(lat, lon, date)
	}
	return &domain.SolunarSnapshot{}
}

// MockActivityService is a mock implementation of service.ActivityService
type MockActivityService struct {
	scoreFunc func(weather *domain.WeatherSnapshot, solunar *domain.SolunarSnapshot, now time.Time) *domain.ActivityResult
}

func (m *MockActivityService) Score(weather *domain.WeatherSnapshot, solunar *domain.SolunarSnapshot, now time.Time) *domain.ActivityResult {
	if m.scoreFunc != nil {
		return m.scoreFunc(weather, solunar, now)
	}
	return &domain.ActivityResult{Score: 2, Label: "Medium", Color: "#f97316", MainFactor: "Neutral conditions"}
}

// MockGeocodingClient is a mock implementation of clients.GeocodingClient
type MockGeocodingClient struct {
	searchFunc func(ctx context.Context, query string, count int) ([]domain.Location, error)
}

func (m *MockGeocodingClient) Search(ctx context.Context, query string, count int) ([]domain.Location, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, count)
	}
	return []domain.Location{}, nil
}
