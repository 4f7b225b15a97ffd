package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ovaska/fishframe/internal/domain"
)

func TestWallpaperHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockService    *MockWallpaperService
		wantStatusCode int
		wantContent    string
	}{
		{
			name:           "valid coordinates",
			query:          "lat=61.5&lon=23.8",
			mockService:    &MockWallpaperService{},
			wantStatusCode: http.StatusOK,
			wantContent:    "image/png",
		},
		{
			name:           "missing lat",
			query:          "lon=23.8",
			mockService:    &MockWallpaperService{},
			wantStatusCode: http.StatusBadRequest,
			wantContent:    "application/problem+json",
		},
		{
			name:           "missing lon",
			query:          "lat=61.5",
			mockService:    &MockWallpaperService{},
			wantStatusCode: http.StatusBadRequest,
			wantContent:    "application/problem+json",
		},
		{
			name:           "non-numeric lat",
			query:          "lat=abc&lon=23.8",
			mockService:    &MockWallpaperService{},
			wantStatusCode: http.StatusBadRequest,
			wantContent:    "application/problem+json",
		},
		{
			name:           "latitude out of range",
			query:          "lat=120&lon=23.8",
			mockService:    &MockWallpaperService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantContent:    "application/problem+json",
		},
		{
			name:           "width below minimum",
			query:          "lat=61.5&lon=23.8&w=50",
			mockService:    &MockWallpaperService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantContent:    "application/problem+json",
		},
		{
			name:           "invalid timezone",
			query:          "lat=61.5&lon=23.8&tz=Not/AZone",
			mockService:    &MockWallpaperService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantContent:    "application/problem+json",
		},
		{
			name:  "weather provider down",
			query: "lat=61.5&lon=23.8",
			mockService: &MockWallpaperService{
				renderFunc: func(ctx context.Context, req *domain.WallpaperRequest) ([]byte, error) {
					return nil, fmt.Errorf("%w: status 500", domain.ErrUpstream)
				},
			},
			wantStatusCode: http.StatusBadGateway,
			wantContent:    "application/problem+json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewWallpaperHandler(tt.mockService, "UTC")

			req := httptest.NewRequest(http.MethodGet, "/v1/wallpaper?"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.Get(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatusCode)
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.wantContent {
				t.Errorf("Content-Type = %q, want %q", ct, tt.wantContent)
			}
		})
	}
}

func TestWallpaperHandler_Get_PassesRequestThrough(t *testing.T) {
	var captured *domain.WallpaperRequest
	mockService := &MockWallpaperService{
		renderFunc: func(ctx context.Context, req *domain.WallpaperRequest) ([]byte, error) {
			captured = req
			return []byte("png"), nil
		},
	}

	h := NewWallpaperHandler(mockService, "UTC")
	req := httptest.NewRequest(http.MethodGet, "/v1/wallpaper?lat=61.5&lon=23.8&w=800&h=1600&tz=Europe/Helsinki&place=Tampere", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if captured == nil {
		t.Fatal("service was not invoked")
	}
	if captured.Latitude != 61.5 || captured.Longitude != 23.8 {
		t.Errorf("coordinates = %v, %v", captured.Latitude, captured.Longitude)
	}
	if captured.Width != 800 || captured.Height != 1600 {
		t.Errorf("dimensions = %dx%d, want 800x1600", captured.Width, captured.Height)
	}
	if captured.Place != "Tampere" {
		t.Errorf("Place = %q, want Tampere", captured.Place)
	}
	if captured.Location == nil || captured.Location.String() != "Europe/Helsinki" {
		t.Errorf("Location = %v, want Europe/Helsinki", captured.Location)
	}
	if captured.Now.IsZero() {
		t.Error("Now was not set")
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=600" {
		t.Errorf("Cache-Control = %q", cc)
	}
}
