package briefing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/avbrief/avbrief/internal/metar"
	"github.com/avbrief/avbrief/pkg/logger"
)

// Import logger functions
var (
	String = logger.String
	Error  = logger.Error
)

// Config contains the briefing generation settings
type Config struct {
	Enabled        bool
	APIKey         string
	Model          string
	TimeoutSeconds int
}

// Service generates short plain-language weather briefings from decoded
// reports using the Gemini API. The service is optional: when disabled it
// is simply never constructed.
type Service struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *logger.Logger
}

// NewService creates a briefing service backed by the Gemini API
func NewService(ctx context.Context, config *Config, logger *logger.Logger) (*Service, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Service{
		client:  client,
		model:   config.Model,
		timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		logger:  logger.Named("briefing"),
	}, nil
}

// Generate produces a short pilot-oriented briefing for a decoded report
func (s *Service) Generate(ctx context.Context, report *metar.DecodedReport) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := buildPrompt(report)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("briefing generation failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("briefing generation returned no content")
	}

	s.logger.Debug("Generated briefing", String("station", report.Station))
	return text, nil
}

// buildPrompt assembles the briefing request from the decoded fields so the
// model works from interpreted values rather than raw METAR codes
func buildPrompt(report *metar.DecodedReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a two-sentence VFR weather briefing for a general aviation pilot at %s.\n", report.Station)
	fmt.Fprintf(&b, "Observed %s.\n", report.Observed.String())
	fmt.Fprintf(&b, "Wind: %s.\n", report.WindText())
	fmt.Fprintf(&b, "Visibility: %s.\n", report.VisibilityText())
	fmt.Fprintf(&b, "Weather: %s.\n", report.WeatherText())
	fmt.Fprintf(&b, "Clouds: %s.\n", report.CloudsText())
	fmt.Fprintf(&b, "Temperature: %s.\n", report.TemperatureText())
	fmt.Fprintf(&b, "Pressure: %s.\n", report.PressureText())
	b.WriteString("Mention anything a pilot should watch out for. Do not repeat raw codes.")
	return b.String()
}
