package weather

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/avbrief/avbrief/internal/geo"
	"github.com/avbrief/avbrief/internal/metar"
	"github.com/avbrief/avbrief/internal/storage/sqlite"
	"github.com/avbrief/avbrief/internal/websocket"
	"github.com/avbrief/avbrief/pkg/logger"
)

// StationDirectory resolves ICAO identifiers to airport records
type StationDirectory interface {
	GetStation(icao string) (*sqlite.StationRecord, error)
}

// BriefingGenerator produces a plain-language briefing for a decoded report
type BriefingGenerator interface {
	Generate(ctx context.Context, report *metar.DecodedReport) (string, error)
}

// Broadcaster pushes refreshed reports to connected clients
type Broadcaster interface {
	Broadcast(message *websocket.Message)
}

// Service manages weather fetching, decoding and caching for the home
// station, and serves on-demand decodes for arbitrary stations
type Service struct {
	config      Config
	airportCode string
	client      *Client
	cache       *Cache
	directory   StationDirectory
	briefer     BriefingGenerator
	broadcaster Broadcaster
	logger      *logger.Logger

	// Service lifecycle
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
	mu      sync.RWMutex

	// Initial data readiness
	initialDataReady chan struct{}
	initialDataOnce  sync.Once
}

// NewService creates a new weather service. directory, briefer and
// broadcaster may be nil; the matching enrichment is then skipped.
func NewService(config Config, airportCode string, directory StationDirectory, briefer BriefingGenerator, broadcaster Broadcaster, logger *logger.Logger) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	return &Service{
		config:           config,
		airportCode:      airportCode,
		client:           NewClient(config, logger),
		cache:            NewCache(config, logger),
		directory:        directory,
		briefer:          briefer,
		broadcaster:      broadcaster,
		logger:           logger.Named("weather-service"),
		ctx:              ctx,
		cancel:           cancel,
		initialDataReady: make(chan struct{}),
	}
}

// Start begins the weather service background operations
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil // Already started
	}

	s.logger.Info("Starting weather service",
		logger.String("airport", s.airportCode),
		logger.Int("refresh_interval_minutes", s.config.RefreshIntervalMinutes))

	// Perform initial fetch
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.performInitialFetch()
	}()

	// Start background refresh goroutine
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.backgroundRefresh()
	}()

	s.started = true
	return nil
}

// Stop gracefully shuts down the weather service
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil // Already stopped
	}

	s.logger.Info("Stopping weather service")

	// Cancel context to signal goroutines to stop
	s.cancel()

	// Wait for all goroutines to finish
	s.wg.Wait()

	s.started = false
	s.logger.Info("Weather service stopped")
	return nil
}

// IsStarted returns whether the service is currently running
func (s *Service) IsStarted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// GetReport returns the current cached home station report.
// Waits for initial data to be available if the service just started.
func (s *Service) GetReport() *Report {
	// Wait for initial data to be ready (with timeout)
	select {
	case <-s.initialDataReady:
		// Initial data is ready, proceed normally
	case <-time.After(30 * time.Second):
		s.logger.Warn("Timeout waiting for initial weather data")
		return &Report{
			Station:     s.airportCode,
			FetchedAt:   time.Now().UTC(),
			FetchErrors: []string{"Weather data is still being fetched, please try again in a moment"},
		}
	}

	report := s.cache.Get()
	if report == nil {
		// The initial fetch ran but never produced data
		return &Report{
			Station:     s.airportCode,
			FetchedAt:   time.Now().UTC(),
			FetchErrors: []string{"Weather data temporarily unavailable"},
		}
	}

	return report
}

// FetchAndDecode fetches and decodes the latest METAR for an arbitrary
// station. Results are not cached; the home station cache is unaffected.
func (s *Service) FetchAndDecode(airportCode string) (*Report, error) {
	return s.fetchReport(airportCode)
}

// RefreshNow triggers an immediate refresh of the home station report
func (s *Service) RefreshNow() {
	s.logger.Info("Manual weather refresh triggered")
	go s.fetchAndUpdateCache()
}

// performInitialFetch performs the first weather data fetch on service start
func (s *Service) performInitialFetch() {
	s.logger.Info("Performing initial weather data fetch",
		logger.String("airport", s.airportCode))

	s.fetchAndUpdateCache()

	// Signal that initial data is ready
	s.initialDataOnce.Do(func() {
		close(s.initialDataReady)
		s.logger.Info("Initial weather data fetch completed")
	})
}

// backgroundRefresh runs the periodic weather data refresh
func (s *Service) backgroundRefresh() {
	refreshInterval := time.Duration(s.config.RefreshIntervalMinutes) * time.Minute
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	s.logger.Info("Background weather refresh started",
		logger.String("interval", refreshInterval.String()))

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info("Background weather refresh stopped")
			return
		case <-ticker.C:
			s.logger.Debug("Periodic weather refresh triggered")
			s.fetchAndUpdateCache()
		}
	}
}

// fetchAndUpdateCache fetches the home station report, updates the cache
// and broadcasts the result. A failed fetch keeps the previous cache entry
// so clients degrade to stale data instead of none.
func (s *Service) fetchAndUpdateCache() {
	startTime := time.Now()

	report, err := s.fetchReport(s.airportCode)
	if err != nil {
		s.logger.Error("Failed to refresh weather data",
			logger.String("airport", s.airportCode),
			logger.Error(err))
		return
	}

	s.cache.Set(report)

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(&websocket.Message{
			Type: websocket.MessageTypeWeatherUpdate,
			Data: map[string]any{"report": report},
		})
	}

	s.logger.Info("Weather data refresh completed",
		logger.String("airport", s.airportCode),
		logger.String("duration", time.Since(startTime).String()))
}

// fetchReport fetches, decodes and enriches a single station report
func (s *Service) fetchReport(airportCode string) (*Report, error) {
	raw, err := s.client.FetchRawMETAR(airportCode)
	if err != nil {
		return nil, err
	}

	decoded, err := metar.Decode(raw, airportCode)
	if err != nil {
		return nil, fmt.Errorf("failed to decode METAR %q: %w", raw, err)
	}

	report := &Report{
		Station:   decoded.Station,
		Decoded:   decoded,
		FetchedAt: time.Now().UTC(),
	}
	s.enrich(report)
	return report, nil
}

// enrich annotates a report with the station name, the magnetic wind
// direction and an optional AI briefing. Enrichment failures are recorded
// on the report, never returned: the decoded report alone is still useful.
func (s *Service) enrich(report *Report) {
	if s.directory != nil {
		station, err := s.directory.GetStation(report.Station)
		if err != nil {
			report.FetchErrors = append(report.FetchErrors, fmt.Sprintf("station lookup: %s", err.Error()))
		} else if station != nil {
			report.StationName = station.Name

			// Annotate the true wind direction with its magnetic equivalent
			if wind := report.Decoded.Wind; wind != nil && !wind.Calm && !wind.Variable {
				declination := geo.MagneticVariation(station.Latitude, station.Longitude, float64(station.ElevationFt), time.Now())
				magnetic := int(math.Round(geo.MagneticFromTrue(float64(wind.DirectionDeg), declination)))
				report.MagneticWindDeg = &magnetic
			}
		}
	}

	if s.briefer != nil {
		briefing, err := s.briefer.Generate(s.ctx, report.Decoded)
		if err != nil {
			s.logger.Warn("Briefing generation failed",
				logger.String("airport", report.Station),
				logger.Error(err))
			report.FetchErrors = append(report.FetchErrors, fmt.Sprintf("briefing: %s", err.Error()))
		} else {
			report.Briefing = briefing
		}
	}
}
