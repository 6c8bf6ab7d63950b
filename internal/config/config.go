package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the main application configuration structure
// containing all configuration sections
type Config struct {
	Server   ServerConfig   `toml:"server"`   // HTTP server settings
	Logging  LoggingConfig  `toml:"logging"`  // Application logging settings
	Station  StationConfig  `toml:"station"`  // Home station settings
	Weather  WeatherConfig  `toml:"wx"`       // Weather data fetching and caching settings
	Storage  StorageConfig  `toml:"storage"`  // Station directory persistence settings
	Briefing BriefingConfig `toml:"briefing"` // AI briefing generation settings
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port               int      `toml:"port"`                  // Primary HTTP port for the server
	Host               string   `toml:"host"`                  // Host address to bind to (e.g., 127.0.0.1 for localhost only, 0.0.0.0 for all interfaces)
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`  // List of origins allowed for CORS requests (use ["*"] for all origins)
	ReadTimeoutSecs    int      `toml:"read_timeout_seconds"`  // Maximum duration for reading the entire request (0 = no timeout)
	WriteTimeoutSecs   int      `toml:"write_timeout_seconds"` // Maximum duration for writing the response (0 = no timeout)
	IdleTimeoutSecs    int      `toml:"idle_timeout_seconds"`  // Maximum duration to wait for the next request when keep-alives are enabled
	AdditionalPorts    []int    `toml:"additional_ports"`      // Additional HTTP ports to listen on (useful for multiple interfaces)
	StaticFilesDir     string   `toml:"static_files_dir"`      // Directory to serve static files from (e.g., "www")
}

// LoggingConfig contains application logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`  // Log level: "debug", "info", "warn", or "error"
	Format string `toml:"format"` // Log format: "json" (structured) or "console" (human-readable)
}

// StationConfig identifies the home station whose weather is refreshed
// in the background and served from cache
type StationConfig struct {
	AirportCode    string `toml:"airport_code"`     // ICAO code of the home airport (e.g., "KHIO")
	AirportsDBPath string `toml:"airports_db_path"` // Path to airport database CSV file (OurAirports format)
}

// WeatherConfig contains weather data fetching and caching configuration
type WeatherConfig struct {
	APIBaseURL             string `toml:"api_base_url"`             // Base URL for the METAR API (e.g., https://aviationweather.gov/api/data)
	RefreshIntervalMinutes int    `toml:"refresh_interval_minutes"` // Weather data refresh interval in minutes
	RequestTimeoutSeconds  int    `toml:"request_timeout_seconds"`  // HTTP request timeout in seconds
	MaxRetries             int    `toml:"max_retries"`              // Maximum number of retry attempts for failed requests
	CacheExpiryMinutes     int    `toml:"cache_expiry_minutes"`     // How long to keep cached data if refresh fails
}

// StorageConfig contains station directory persistence settings
type StorageConfig struct {
	SQLitePath string `toml:"sqlite_path"` // Path to the SQLite station directory database file
}

// BriefingConfig contains AI briefing generation settings
type BriefingConfig struct {
	Enabled        bool   `toml:"enabled"`         // Enable or disable plain-language briefing generation
	APIKey         string `toml:"api_key"`         // Gemini API key
	Model          string `toml:"model"`           // Gemini model to use (e.g., "gemini-2.0-flash")
	TimeoutSeconds int    `toml:"timeout_seconds"` // Timeout for briefing generation requests in seconds
}

// Load loads the configuration from the specified file path
func Load(path string) (*Config, error) {
	var config Config

	// Check if the file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Read the config file
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return &config, nil
}

// LoadWithFallback loads the configuration by checking multiple locations in order of preference
func LoadWithFallback(preferredPath string) (*Config, error) {
	// List of paths to check in order of preference
	searchPaths := []string{
		preferredPath,         // User-specified path (if provided)
		"configs/config.toml", // configs/ folder
		"config.toml",         // Root directory
	}

	// Remove duplicates while preserving order
	uniquePaths := make([]string, 0, len(searchPaths))
	seen := make(map[string]bool)
	for _, path := range searchPaths {
		if path != "" && !seen[path] {
			uniquePaths = append(uniquePaths, path)
			seen[path] = true
		}
	}

	var lastErr error
	for _, path := range uniquePaths {
		if _, err := os.Stat(path); err == nil {
			// File exists, try to load it
			config, err := Load(path)
			if err != nil {
				lastErr = fmt.Errorf("failed to load config from %s: %w", path, err)
				continue
			}
			return config, nil
		}
		lastErr = fmt.Errorf("config file not found: %s", path)
	}

	return nil, fmt.Errorf("config file not found in any of the expected locations: %v. Last error: %w", uniquePaths, lastErr)
}

// Validate validates the configuration and fills in defaults
func (c *Config) Validate() error {
	// Validate server config
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	// Validate AdditionalPorts
	portsSeen := make(map[int]bool)
	portsSeen[c.Server.Port] = true
	for _, p := range c.Server.AdditionalPorts {
		if p <= 0 || p > 65535 {
			return fmt.Errorf("invalid additional server port: %d", p)
		}
		if portsSeen[p] {
			return fmt.Errorf("duplicate port configured: %d (primary or additional)", p)
		}
		portsSeen[p] = true
	}

	// Set default static files directory if not specified
	if c.Server.StaticFilesDir == "" {
		c.Server.StaticFilesDir = "www"
	}

	// Validate logging config
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid log level
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	switch c.Logging.Format {
	case "json", "console":
		// Valid log format
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	// Validate station config
	if err := c.ValidateStation(); err != nil {
		return err
	}

	// Validate weather config
	if err := c.ValidateWeather(); err != nil {
		return err
	}

	// Validate storage config
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = "data/stations.db"
	}

	// Validate briefing config
	if c.Briefing.Enabled {
		if c.Briefing.APIKey == "" {
			return fmt.Errorf("briefing api_key is required when briefing is enabled")
		}
		if c.Briefing.Model == "" {
			c.Briefing.Model = "gemini-2.0-flash"
		}
		if c.Briefing.TimeoutSeconds <= 0 {
			c.Briefing.TimeoutSeconds = 30
		}
	}

	return nil
}

// ValidateStation validates the station configuration
func (c *Config) ValidateStation() error {
	if c.Station.AirportCode == "" {
		return fmt.Errorf("station airport_code is required")
	}
	if len(c.Station.AirportCode) != 4 {
		return fmt.Errorf("invalid station airport_code: %s (expected a 4-character ICAO identifier)", c.Station.AirportCode)
	}
	if c.Station.AirportsDBPath == "" {
		return fmt.Errorf("station airports_db_path is required")
	}
	return nil
}

// ValidateWeather validates the weather configuration and fills in defaults
func (c *Config) ValidateWeather() error {
	if c.Weather.APIBaseURL == "" {
		return fmt.Errorf("weather api_base_url cannot be empty")
	}
	if c.Weather.RefreshIntervalMinutes <= 0 {
		c.Weather.RefreshIntervalMinutes = 10
	}
	if c.Weather.RequestTimeoutSeconds <= 0 {
		c.Weather.RequestTimeoutSeconds = 30
	}
	if c.Weather.MaxRetries < 0 {
		return fmt.Errorf("weather max_retries must be 0 or greater: %d", c.Weather.MaxRetries)
	}
	if c.Weather.MaxRetries == 0 {
		c.Weather.MaxRetries = 3
	}
	if c.Weather.CacheExpiryMinutes <= 0 {
		c.Weather.CacheExpiryMinutes = 60
	}
	return nil
}
