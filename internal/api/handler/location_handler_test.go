package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ovaska/fishframe/internal/domain"
)

func TestLocationHandler_Search(t *testing.T) {
	tampere := domain.Location{
		Name:      "Tampere",
		Country:   "Finland",
		Admin1:    "Pirkanmaa",
		Latitude:  61.49911,
		Longitude: 23.78712,
		Timezone:  "Europe/Helsinki",
	}

	tests := []struct {
		name           string
		query          string
		geocoding      *MockGeocodingClient
		wantStatusCode int
		wantResults    int
	}{
		{
			name:  "matching place",
			query: "q=Tampere",
			geocoding: &MockGeocodingClient{
				searchFunc: func(ctx context.Context, query string, count int) ([]domain.Location, error) {
					return []domain.Location{tampere}, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantResults:    1,
		},
		{
			name:           "no matches",
			query:          "q=xyzzy",
			geocoding:      &MockGeocodingClient{},
			wantStatusCode: http.StatusOK,
			wantResults:    0,
		},
		{
			name:           "missing query",
			query:          "",
			geocoding:      &MockGeocodingClient{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "blank query",
			query:          "q=%20%20",
			geocoding:      &MockGeocodingClient{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:  "geocoding provider down",
			query: "q=Tampere",
			geocoding: &MockGeocodingClient{
				searchFunc: func(ctx context.Context, query string, count int) ([]domain.Location, error) {
					return nil, fmt.Errorf("%w: status 502", domain.ErrUpstream)
				},
			},
			wantStatusCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewLocationHandler(tt.geocoding, "https://fishframe.dev")

			req := httptest.NewRequest(http.MethodGet, "/v1/locations?"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.Search(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatusCode)
			}
			if tt.wantStatusCode != http.StatusOK {
				return
			}

			var resp LocationsResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if len(resp.Results) != tt.wantResults {
				t.Errorf("len(results) = %d, want %d", len(resp.Results), tt.wantResults)
			}
		})
	}
}

func TestLocationHandler_Search_WallpaperURL(t *testing.T) {
	geocoding := &MockGeocodingClient{
		searchFunc: func(ctx context.Context, query string, count int) ([]domain.Location, error) {
			return []domain.Location{
				{
					Name:      "Tampere",
					Latitude:  61.49911,
					Longitude: 23.78712,
					Timezone:  "Europe/Helsinki",
				},
			}, nil
		},
	}

	h := NewLocationHandler(geocoding, "https://fishframe.dev")
	req := httptest.NewRequest(http.MethodGet, "/v1/locations?q=Tampere", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	var resp LocationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(resp.Results))
	}

	want := "https://fishframe.dev/v1/wallpaper?lat=61.4991&lon=23.7871&place=Tampere&tz=Europe%2FHelsinki"
	if got := resp.Results[0].WallpaperURL; got != want {
		t.Errorf("WallpaperURL = %q, want %q", got, want)
	}
}

func TestLocationHandler_Search_ClampsCount(t *testing.T) {
	var gotCount int
	geocoding := &MockGeocodingClient{
		searchFunc: func(ctx context.Context, query string, count int) ([]domain.Location, error) {
			gotCount = count
			return nil, nil
		},
	}

	h := NewLocationHandler(geocoding, "https://fishframe.dev")

	tests := []struct {
		query string
		want  int
	}{
		{"q=Tampere", 5},
		{"q=Tampere&count=3", 3},
		{"q=Tampere&count=50", 5},
		{"q=Tampere&count=0", 5},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/v1/locations?"+tt.query, nil)
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		if gotCount != tt.want {
			t.Errorf("count for %q = %d, want %d", tt.query, gotCount, tt.want)
		}
	}
}
