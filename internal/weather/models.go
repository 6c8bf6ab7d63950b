package weather

import (
	"errors"
	"time"

	"github.com/avbrief/avbrief/internal/metar"
)

// Config contains weather data fetching and caching settings
type Config struct {
	APIBaseURL             string // Base URL for the METAR API
	RefreshIntervalMinutes int    // Home station refresh interval in minutes
	RequestTimeoutSeconds  int    // HTTP request timeout in seconds
	MaxRetries             int    // Maximum number of retry attempts for failed requests
	CacheExpiryMinutes     int    // How long cached data stays fresh if refresh fails
}

// ErrNoData is returned when the upstream API has no METAR for a station
var ErrNoData = errors.New("no METAR data available")

// Report is the enriched weather product served by the API: the decoded
// report plus station directory and magnetic wind annotations
type Report struct {
	Station         string               `json:"station"`
	StationName     string               `json:"station_name,omitempty"`
	Decoded         *metar.DecodedReport `json:"decoded"`
	MagneticWindDeg *int                 `json:"magnetic_wind_deg,omitempty"`
	Briefing        string               `json:"briefing,omitempty"`
	FetchedAt       time.Time            `json:"fetched_at"`
	FetchErrors     []string             `json:"fetch_errors,omitempty"`
}
