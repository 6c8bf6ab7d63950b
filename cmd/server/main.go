package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/avbrief/avbrief/internal/api"
	"github.com/avbrief/avbrief/internal/briefing"
	"github.com/avbrief/avbrief/internal/config"
	"github.com/avbrief/avbrief/internal/storage/sqlite"
	"github.com/avbrief/avbrief/internal/weather"
	"github.com/avbrief/avbrief/internal/websocket"
	"github.com/avbrief/avbrief/pkg/logger"
)

var (
	// Version is injected at build time
	Version = "dev"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file (optional - will search in configs/ and root directory)")
	flag.Parse()

	// Load configuration with fallback logic
	cfg, err := config.LoadWithFallback(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting avbrief server",
		logger.String("version", Version),
		logger.String("home_station", cfg.Station.AirportCode),
	)

	// Open the station directory database
	if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error("Failed to create database directory", logger.Error(err), logger.String("path", dir))
			os.Exit(1)
		}
	}

	db, err := sql.Open("sqlite", cfg.Storage.SQLitePath)
	if err != nil {
		log.Error("Failed to open station database", logger.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	stations := sqlite.NewStationStorage(db, log)

	// Import the airports dataset so lookups work on first run
	count, err := stations.ImportCSV(cfg.Station.AirportsDBPath)
	if err != nil {
		log.Error("Failed to import airports database", logger.Error(err), logger.String("path", cfg.Station.AirportsDBPath))
		os.Exit(1)
	}
	log.Info("Station directory ready", logger.Int("stations", count))

	// The home station must exist in the directory
	home, err := stations.GetStation(cfg.Station.AirportCode)
	if err != nil {
		log.Error("Failed to look up home station", logger.Error(err))
		os.Exit(1)
	}
	if home == nil {
		log.Error("Home station not found in airports database", logger.String("airport_code", cfg.Station.AirportCode))
		os.Exit(1)
	}
	log.Info("Home station resolved",
		logger.String("icao", home.ICAO),
		logger.String("name", home.Name),
		logger.Float64("lat", home.Latitude),
		logger.Float64("lon", home.Longitude),
	)

	// Create WebSocket server
	wsServer := websocket.NewServer(log)
	go wsServer.Run()

	// Create briefing service (if enabled)
	var briefer weather.BriefingGenerator
	if cfg.Briefing.Enabled {
		briefingService, err := briefing.NewService(context.Background(), &briefing.Config{
			Enabled:        cfg.Briefing.Enabled,
			APIKey:         cfg.Briefing.APIKey,
			Model:          cfg.Briefing.Model,
			TimeoutSeconds: cfg.Briefing.TimeoutSeconds,
		}, log)
		if err != nil {
			log.Error("Failed to create briefing service", logger.Error(err))
			// Continue without briefings rather than failing
		} else {
			briefer = briefingService
			log.Info("Briefing service enabled", logger.String("model", cfg.Briefing.Model))
		}
	}

	// Create weather service
	weatherService := weather.NewService(
		weather.Config{
			APIBaseURL:             cfg.Weather.APIBaseURL,
			RefreshIntervalMinutes: cfg.Weather.RefreshIntervalMinutes,
			RequestTimeoutSeconds:  cfg.Weather.RequestTimeoutSeconds,
			MaxRetries:             cfg.Weather.MaxRetries,
			CacheExpiryMinutes:     cfg.Weather.CacheExpiryMinutes,
		},
		cfg.Station.AirportCode,
		stations,
		briefer,
		wsServer,
		log,
	)

	// Route incoming weather requests from WebSocket clients
	wsServer.SetMessageHandler(weather.NewWebSocketHandler(weatherService, log))

	// Start weather service
	if err := weatherService.Start(); err != nil {
		log.Error("Failed to start weather service", logger.Error(err))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(weatherService, stations, cfg, log, wsServer)

	// --- Setup for multiple HTTP servers ---
	var servers []*http.Server
	allPorts := []int{cfg.Server.Port}
	if len(cfg.Server.AdditionalPorts) > 0 {
		allPorts = append(allPorts, cfg.Server.AdditionalPorts...)
	}

	log.Info("Configured listener ports", logger.Any("ports", allPorts))

	// Start a server for each configured port
	for _, port := range allPorts {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, port)
		server := &http.Server{
			Addr:         addr,
			Handler:      router.Routes(), // All servers use the same main router
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSecs) * time.Second,
		}
		servers = append(servers, server)

		go func(s *http.Server) {
			log.Info("Starting HTTP server", logger.String("addr", s.Addr))
			if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("HTTP server error on startup", logger.String("addr", s.Addr), logger.Error(err))
			}
		}(server)
	}

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutting down server...")

	// Stop background services first
	log.Info("Stopping weather service...")
	weatherService.Stop()
	log.Info("Weather service stopped.")

	// Shutdown all HTTP servers
	log.Info("Shutting down HTTP servers...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(srv *http.Server) {
			defer wg.Done()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("HTTP server shutdown error", logger.String("addr", srv.Addr), logger.Error(err))
			} else {
				log.Info("HTTP server shutdown complete", logger.String("addr", srv.Addr))
			}
		}(s)
	}
	wg.Wait()

	log.Info("Server fully stopped")
}
