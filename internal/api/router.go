package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avbrief/avbrief/internal/config"
	"github.com/avbrief/avbrief/internal/storage/sqlite"
	"github.com/avbrief/avbrief/internal/weather"
	"github.com/avbrief/avbrief/internal/websocket"
	"github.com/avbrief/avbrief/pkg/logger"
)

// Router wires the API handlers, the WebSocket endpoint and the static UI
type Router struct {
	handler  *Handler
	wsServer *websocket.Server
	config   *config.Config
	logger   *logger.Logger
}

// NewRouter creates a new API router
func NewRouter(weatherService *weather.Service, stations *sqlite.StationStorage, cfg *config.Config, log *logger.Logger, wsServer *websocket.Server) *Router {
	return &Router{
		handler:  NewHandler(weatherService, stations, cfg, log),
		wsServer: wsServer,
		config:   cfg,
		logger:   log.Named("api-router"),
	}
}

// Routes builds the HTTP routing table
func (rt *Router) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(rt.corsMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", rt.handler.GetHealth)
		r.Get("/wx", rt.handler.GetWeather)
		r.Get("/wx/{icao}", rt.handler.GetStationWeather)
		r.Post("/decode", rt.handler.DecodeReport)
		r.Get("/station", rt.handler.GetStation)
	})

	// WebSocket endpoint for live weather updates
	r.Get("/ws", rt.wsServer.HandleConnection)

	// Everything else falls through to the static UI
	staticHandler := NewStaticFileHandler(rt.config.Server.StaticFilesDir, rt.logger)
	r.NotFound(staticHandler.ServeHTTP)

	return r
}

// corsMiddleware applies the configured CORS policy
func (rt *Router) corsMiddleware(next http.Handler) http.Handler {
	allowed := rt.config.Server.CORSAllowedOrigins

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			for _, o := range allowed {
				if o == "*" || o == origin {
					w.Header().Set("Access-Control-Allow-Origin", o)
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
					break
				}
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
