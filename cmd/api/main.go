// FishFrame API
//
// Personalized weather/fishing lock-screen wallpapers.
//
//	@title			FishFrame API
//	@version		1.0
//	@description	Render a personalized weather/fishing lock-screen wallpaper from geographic coordinates.
//
//	@BasePath	/v1
//
//	@tag.name			wallpaper
//	@tag.description	Wallpaper rendering
//
//	@tag.name			solunar
//	@tag.description	Solunar computation endpoints
//
//	@tag.name			activity
//	@tag.description	Pike activity scoring
//
//	@tag.name			locations
//	@tag.description	Location search for the picker
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/ovaska/fishframe/internal/api"
	"github.com/ovaska/fishframe/internal/api/handler"
	"github.com/ovaska/fishframe/internal/astro"
	"github.com/ovaska/fishframe/internal/clients"
	"github.com/ovaska/fishframe/internal/config"
	"github.com/ovaska/fishframe/internal/llm"
	"github.com/ovaska/fishframe/internal/render"
	"github.com/ovaska/fishframe/internal/service"
	"github.com/ovaska/fishframe/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when OTLP is not configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "fishframe-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown: %v", err)
		}
	}()

	// Initialize upstream clients
	weatherClient := clients.NewOpenMeteoClient(cfg.OpenMeteoBaseURL)
	geocodingClient := clients.NewGeocodingClient(cfg.GeocodingBaseURL)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIOutlookModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, wallpapers will render without the outlook line")
	}

	// Initialize services
	weatherService := service.NewWeatherService(weatherClient)
	solunarService := service.NewSolunarService(astro.NewProvider())
	activityService := service.NewActivityService()
	outlookService := service.NewOutlookService(openaiClient)
	wallpaperService := service.NewWallpaperService(weatherService, solunarService, activityService, outlookService, render.PNG{})

	// Initialize handlers
	wallpaperHandler := handler.NewWallpaperHandler(wallpaperService, cfg.DefaultTimezone)
	solunarHandler := handler.NewSolunarHandler(solunarService, cfg.DefaultTimezone)
	activityHandler := handler.NewActivityHandler(weatherService, solunarService, activityService, cfg.DefaultTimezone)
	locationHandler := handler.NewLocationHandler(geocodingClient, cfg.PublicBaseURL)

	// Setup router
	router := api.NewRouter(wallpaperHandler, solunarHandler, activityHandler, locationHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
