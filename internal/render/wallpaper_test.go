package render

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/ovaska/fishframe/internal/domain"
)

func wallpaperInput() *domain.WallpaperData {
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	moonrise := time.Date(2024, 6, 15, 3, 30, 0, 0, time.UTC)

	return &domain.WallpaperData{
		Place: "Tampere",
		Now:   now,
		Weather: &domain.WeatherSnapshot{
			TemperatureC:     18.4,
			WindSpeedKmh:     12.5,
			WindDirectionDeg: 225,
			CloudCoverPct:    40,
			PressureHpa:      1013.2,
			PressureTrend:    domain.PressureStable,
		},
		Solunar: &domain.SolunarSnapshot{
			Moon: domain.MoonSnapshot{
				Phase:        domain.MoonPhaseFull,
				Illumination: 98,
				Moonrise:     &moonrise,
			},
			Sun: domain.SunSnapshot{
				Sunrise: time.Date(2024, 6, 15, 4, 15, 0, 0, time.UTC),
				Sunset:  time.Date(2024, 6, 15, 21, 45, 0, 0, time.UTC),
			},
			MajorPeriods: []domain.Period{
				{Kind: domain.PeriodTransit, Start: now.Add(30 * time.Minute), End: now.Add(150 * time.Minute)},
			},
			MinorPeriods: []domain.Period{
				{Kind: domain.PeriodMoonrise, Start: moonrise.Add(-30 * time.Minute), End: moonrise.Add(30 * time.Minute)},
			},
		},
		Activity: &domain.ActivityResult{
			Score:      4,
			Label:      "Very good",
			Color:      "#84cc16",
			MainFactor: "Stable pressure",
		},
		Width:  390,
		Height: 844,
	}
}

func TestWallpaper(t *testing.T) {
	out, err := Wallpaper(wallpaperInput())
	if err != nil {
		t.Fatalf("Wallpaper() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 390 || bounds.Dy() != 844 {
		t.Errorf("dimensions = %dx%d, want 390x844", bounds.Dx(), bounds.Dy())
	}
}

func TestWallpaper_DefaultDimensions(t *testing.T) {
	in := wallpaperInput()
	in.Width = 0
	in.Height = 0

	out, err := Wallpaper(in)
	if err != nil {
		t.Fatalf("Wallpaper() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != DefaultWidth || bounds.Dy() != DefaultHeight {
		t.Errorf("dimensions = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), DefaultWidth, DefaultHeight)
	}
}

func TestWallpaper_WithOutlook(t *testing.T) {
	in := wallpaperInput()
	in.Outlook = &domain.OutlookText{
		Headline: "Solid morning bite",
		Tip:      "Work the weed edges with slow-rolled spinnerbaits while the pressure holds.",
	}

	if _, err := Wallpaper(in); err != nil {
		t.Fatalf("Wallpaper() error = %v", err)
	}
}

func TestWallpaper_SparseData(t *testing.T) {
	// Polar edge: no sun events, no periods. The render must still succeed.
	in := wallpaperInput()
	in.Solunar.Sun = domain.SunSnapshot{}
	in.Solunar.MajorPeriods = nil
	in.Solunar.MinorPeriods = nil

	if _, err := Wallpaper(in); err != nil {
		t.Fatalf("Wallpaper() error = %v", err)
	}
}
