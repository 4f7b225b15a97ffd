package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/ovaska/fishframe/docs"
	"github.com/ovaska/fishframe/internal/api/handler"
	"github.com/ovaska/fishframe/internal/api/middleware"
)

type Router struct {
	wallpaperHandler *handler.WallpaperHandler
	solunarHandler   *handler.SolunarHandler
	activityHandler  *handler.ActivityHandler
	locationHandler  *handler.LocationHandler
}

func NewRouter(
	wallpaperHandler *handler.WallpaperHandler,
	solunarHandler *handler.SolunarHandler,
	activityHandler *handler.ActivityHandler,
	locationHandler *handler.LocationHandler,
) *Router {
	return &Router{
		wallpaperHandler: wallpaperHandler,
		solunarHandler:   solunarHandler,
		activityHandler:  activityHandler,
		locationHandler:  locationHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/wallpaper", rt.wallpaperHandler.Get)
		r.Get("/solunar", rt.solunarHandler.Get)
		r.Get("/activity", rt.activityHandler.Get)
		r.Get("/locations", rt.locationHandler.Search)
	})

	return r
}
