package weather

import (
	"sync"
	"time"

	"github.com/avbrief/avbrief/pkg/logger"
)

// Cache holds the most recent home station report with thread-safe access.
// Stale data is kept past expiry so a failed refresh degrades to old data
// instead of no data; IsExpired tells callers which case they are in.
type Cache struct {
	report    *Report
	expiresAt time.Time
	expiry    time.Duration
	logger    *logger.Logger
	mu        sync.RWMutex
}

// NewCache creates a new weather report cache
func NewCache(config Config, logger *logger.Logger) *Cache {
	return &Cache{
		expiry: time.Duration(config.CacheExpiryMinutes) * time.Minute,
		logger: logger.Named("weather-cache"),
	}
}

// Get returns the cached report, or nil if nothing has been cached yet
func (c *Cache) Get() *Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.report
}

// Set updates the cache with a new report
func (c *Cache) Set(report *Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.report = report
	c.expiresAt = time.Now().Add(c.expiry)

	c.logger.Debug("Weather report cached",
		logger.String("station", report.Station),
		logger.Time("expires_at", c.expiresAt),
		logger.Int("error_count", len(report.FetchErrors)))
}

// IsExpired checks if the cached report has passed its freshness window
func (c *Cache) IsExpired() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.report == nil || time.Now().After(c.expiresAt)
}

// Invalidate clears the cache
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.report = nil
	c.expiresAt = time.Time{}
	c.logger.Info("Weather cache invalidated")
}
