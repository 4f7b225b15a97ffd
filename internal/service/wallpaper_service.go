package service

import (
	"context"
	"log"

	"github.com/ovaska/fishframe/internal/domain"
)

// Renderer turns the computed state into PNG bytes. Satisfied by the
// render package; an interface keeps the service testable without drawing.
type Renderer interface {
	Render(data *domain.WallpaperData) ([]byte, error)
}

// WallpaperService orchestrates weather, solunar, scoring, the optional
// outlook and the final render for one request.
type WallpaperService interface {
	Render(ctx context.Context, req *domain.WallpaperRequest) ([]byte, error)
}

type wallpaperService struct {
	weather  WeatherService
	solunar  SolunarService
	activity ActivityService
	outlook  OutlookService
	renderer Renderer
}

// NewWallpaperService creates a WallpaperService.
func NewWallpaperService(weather WeatherService, solunar SolunarService, activity ActivityService, outlook OutlookService, renderer Renderer) WallpaperService {
	return &wallpaperService{
		weather:  weather,
		solunar:  solunar,
		activity: activity,
		outlook:  outlook,
		renderer: renderer,
	}
}

func (s *wallpaperService) Render(ctx context.Context, req *domain.WallpaperRequest) ([]byte, error) {
	weather, err := s.weather.Current(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	solunar := s.solunar.Compute(req.Latitude, req.Longitude, req.Now)
	activity := s.activity.Score(weather, solunar, req.Now)

	place := req.Place
	if place == "" {
		place = "Your spot"
	}

	// The outlook is decoration: failures are logged, never fatal.
	var outlook *domain.OutlookText
	if o, err := s.outlook.Generate(ctx, place, weather, solunar, activity); err == nil {
		outlook = o
	} else {
		log.Printf("outlook generation skipped: %v", err)
	}

	return s.renderer.Render(&domain.WallpaperData{
		Place:    place,
		Now:      req.Now,
		Weather:  weather,
		Solunar:  solunar,
		Activity: activity,
		Outlook:  outlook,
		Width:    req.Width,
		Height:   req.Height,
	})
}
