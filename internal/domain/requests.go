package domain

import "time"

// WallpaperRequest contains the validated query parameters for wallpaper
// rendering. Now and Location are resolved by the handler from tz.
type WallpaperRequest struct {
	Latitude  float64 `json:"lat" validate:"min=-90,max=90"`
	Longitude float64 `json:"lon" validate:"min=-180,max=180"`
	Width     int     `json:"w" validate:"omitempty,min=200,max=4000"`
	Height    int     `json:"h" validate:"omitempty,min=200,max=4000"`
	Timezone  string  `json:"tz" validate:"omitempty,timezone"`
	Place     string  `json:"place" validate:"omitempty,max=80"`

	Now      time.Time      `json:"-"`
	Location *time.Location `json:"-"`
}

// SolunarRequest contains query parameters for the solunar endpoint.
type SolunarRequest struct {
	Latitude  float64 `json:"lat" validate:"min=-90,max=90"`
	Longitude float64 `json:"lon" validate:"min=-180,max=180"`
	Timezone  string  `json:"tz" validate:"omitempty,timezone"`
	Date      string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
