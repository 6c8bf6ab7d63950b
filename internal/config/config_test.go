package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
port = 8080
host = "127.0.0.1"
cors_allowed_origins = ["*"]

[logging]
level = "debug"
format = "json"

[station]
airport_code = "KHIO"
airports_db_path = "data/airports.csv"

[wx]
api_base_url = "https://aviationweather.gov/api/data"
refresh_interval_minutes = 5
request_timeout_seconds = 15
max_retries = 2
cache_expiry_minutes = 30

[storage]
sqlite_path = "data/stations.db"

[briefing]
enabled = false
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "KHIO", cfg.Station.AirportCode)
	assert.Equal(t, "https://aviationweather.gov/api/data", cfg.Weather.APIBaseURL)
	assert.Equal(t, 5, cfg.Weather.RefreshIntervalMinutes)
	assert.Equal(t, 2, cfg.Weather.MaxRetries)
	assert.False(t, cfg.Briefing.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Station.AirportCode = "KHIO"
	cfg.Station.AirportsDBPath = "data/airports.csv"
	cfg.Weather.APIBaseURL = "https://aviationweather.gov/api/data"

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "www", cfg.Server.StaticFilesDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 10, cfg.Weather.RefreshIntervalMinutes)
	assert.Equal(t, 30, cfg.Weather.RequestTimeoutSeconds)
	assert.Equal(t, 3, cfg.Weather.MaxRetries)
	assert.Equal(t, 60, cfg.Weather.CacheExpiryMinutes)
	assert.Equal(t, "data/stations.db", cfg.Storage.SQLitePath)
}

func TestValidate_Errors(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Server.Port = 8080
		cfg.Station.AirportCode = "KHIO"
		cfg.Station.AirportsDBPath = "data/airports.csv"
		cfg.Weather.APIBaseURL = "https://aviationweather.gov/api/data"
		return cfg
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"duplicate additional port", func(c *Config) { c.Server.AdditionalPorts = []int{8080} }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"missing airport code", func(c *Config) { c.Station.AirportCode = "" }},
		{"short airport code", func(c *Config) { c.Station.AirportCode = "HIO" }},
		{"missing airports db", func(c *Config) { c.Station.AirportsDBPath = "" }},
		{"missing api base url", func(c *Config) { c.Weather.APIBaseURL = "" }},
		{"negative retries", func(c *Config) { c.Weather.MaxRetries = -1 }},
		{"briefing without key", func(c *Config) { c.Briefing.Enabled = true }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadWithFallback_PreferredPath(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	cfg, err := LoadWithFallback(path)
	require.NoError(t, err)
	assert.Equal(t, "KHIO", cfg.Station.AirportCode)
}

func TestLoadWithFallback_NotFound(t *testing.T) {
	_, err := LoadWithFallback(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
