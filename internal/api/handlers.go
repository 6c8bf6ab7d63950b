package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avbrief/avbrief/internal/config"
	"github.com/avbrief/avbrief/internal/metar"
	"github.com/avbrief/avbrief/internal/storage/sqlite"
	"github.com/avbrief/avbrief/internal/weather"
	"github.com/avbrief/avbrief/pkg/logger"
)

var icaoPattern = regexp.MustCompile(`^[A-Za-z0-9]{4}$`)

// Handler contains the API handlers
type Handler struct {
	weatherService *weather.Service
	stations       *sqlite.StationStorage
	config         *config.Config
	logger         *logger.Logger
}

// NewHandler creates a new API handler
func NewHandler(weatherService *weather.Service, stations *sqlite.StationStorage, config *config.Config, logger *logger.Logger) *Handler {
	return &Handler{
		weatherService: weatherService,
		stations:       stations,
		config:         config,
		logger:         logger.Named("api-handler"),
	}
}

// ErrorResponse is the JSON shape for API errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeRequest is the JSON body for the on-demand decode endpoint
type DecodeRequest struct {
	Raw     string `json:"raw"`
	Station string `json:"station,omitempty"`
}

// GetHealth returns service health and readiness
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	stationCount := 0
	if h.stations != nil {
		if count, err := h.stations.Count(); err == nil {
			stationCount = count
		}
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"time":            time.Now().UTC().Format(time.RFC3339),
		"home_station":    h.config.Station.AirportCode,
		"weather_started": h.weatherService.IsStarted(),
		"station_count":   stationCount,
	})
}

// GetWeather returns the cached decoded report for the home station
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	report := h.weatherService.GetReport()
	WriteJSON(w, http.StatusOK, report)
}

// GetStationWeather fetches and decodes the latest METAR for an arbitrary station
func (h *Handler) GetStationWeather(w http.ResponseWriter, r *http.Request) {
	icao := strings.ToUpper(chi.URLParam(r, "icao"))
	if !icaoPattern.MatchString(icao) {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid station identifier: %s", icao)})
		return
	}

	report, err := h.weatherService.FetchAndDecode(icao)
	if err != nil {
		h.logger.Warn("On-demand weather fetch failed",
			logger.String("station", icao),
			logger.Error(err))
		WriteJSON(w, http.StatusBadGateway, ErrorResponse{Error: fmt.Sprintf("failed to fetch weather for %s: %s", icao, err.Error())})
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

// DecodeReport decodes a raw METAR string supplied by the caller
func (h *Handler) DecodeReport(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Raw) == "" {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "raw report is required"})
		return
	}

	decoded, err := metar.Decode(req.Raw, req.Station)
	if err != nil {
		switch {
		case errors.Is(err, metar.ErrMalformedReport),
			errors.Is(err, metar.ErrInvalidStationID),
			errors.Is(err, metar.ErrInvalidTimestamp):
			WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			h.logger.Error("Decode failed", logger.Error(err))
			WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "decode failed"})
		}
		return
	}

	WriteJSON(w, http.StatusOK, decoded)
}

// GetStation returns the home station directory entry
func (h *Handler) GetStation(w http.ResponseWriter, r *http.Request) {
	icao := h.config.Station.AirportCode

	var record *sqlite.StationRecord
	if h.stations != nil {
		var err error
		record, err = h.stations.GetStation(icao)
		if err != nil {
			h.logger.Error("Station lookup failed", logger.String("station", icao), logger.Error(err))
		}
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"airport_code": icao,
		"record":       record,
	})
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
