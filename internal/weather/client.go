package weather

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avbrief/avbrief/pkg/logger"
)

// Client fetches raw METAR text from the weather API
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a new weather API client
func NewClient(config Config, logger *logger.Logger) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.RequestTimeoutSeconds) * time.Second,
		},
		logger: logger.Named("weather-client"),
	}
}

// FetchRawMETAR fetches the latest raw METAR line for the specified airport
func (c *Client) FetchRawMETAR(airportCode string) (string, error) {
	url := fmt.Sprintf("%s/metar?ids=%s&format=raw", c.config.APIBaseURL, airportCode)

	body, err := c.fetchWithRetry(url, airportCode)
	if err != nil {
		return "", err
	}

	// The raw format returns one observation per line, newest first
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
	}

	return "", fmt.Errorf("%w for %s", ErrNoData, airportCode)
}

// fetchWithRetry performs the HTTP request with retry logic and exponential backoff
func (c *Client) fetchWithRetry(url, airportCode string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff between retries
			backoffDuration := time.Duration(500*(1<<uint(attempt-1))) * time.Millisecond
			c.logger.Info("Retrying weather data fetch",
				logger.String("airport", airportCode),
				logger.Int("attempt", attempt),
				logger.String("backoff", backoffDuration.String()))
			time.Sleep(backoffDuration)
		}

		resp, err := c.httpClient.Get(url)
		if err != nil {
			lastErr = fmt.Errorf("error making request to weather API: %w", err)
			c.logger.Warn("Weather API request failed, may retry",
				logger.String("airport", airportCode),
				logger.Error(err),
				logger.Int("attempt", attempt+1),
				logger.Int("max_attempts", c.config.MaxRetries+1))
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			c.logger.Warn("Weather API returned non-OK status, may retry",
				logger.String("airport", airportCode),
				logger.Int("status_code", resp.StatusCode),
				logger.Int("attempt", attempt+1),
				logger.Int("max_attempts", c.config.MaxRetries+1))
			continue
		}

		if err != nil {
			lastErr = fmt.Errorf("error reading weather data: %w", err)
			c.logger.Warn("Failed to read weather data, may retry",
				logger.String("airport", airportCode),
				logger.Error(err),
				logger.Int("attempt", attempt+1),
				logger.Int("max_attempts", c.config.MaxRetries+1))
			continue
		}

		if attempt > 0 {
			c.logger.Info("Successfully fetched weather data after retries",
				logger.String("airport", airportCode),
				logger.Int("attempts_needed", attempt+1))
		}
		return string(body), nil
	}

	c.logger.Error("All attempts to fetch weather data failed",
		logger.String("airport", airportCode),
		logger.Error(lastErr),
		logger.Int("max_attempts", c.config.MaxRetries+1))
	return "", lastErr
}
