package weather

import (
	"fmt"

	"github.com/avbrief/avbrief/internal/websocket"
	"github.com/avbrief/avbrief/pkg/logger"
)

// WebSocketHandler handles weather-related WebSocket messages
type WebSocketHandler struct {
	service *Service
	logger  *logger.Logger
}

// NewWebSocketHandler creates a new weather WebSocket message handler
func NewWebSocketHandler(service *Service, logger *logger.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		service: service,
		logger:  logger.Named("weather-ws"),
	}
}

// HandleMessage processes incoming WebSocket messages
func (h *WebSocketHandler) HandleMessage(client *websocket.Client, messageType string, data map[string]any) error {
	switch messageType {
	case websocket.MessageTypeWeatherRequest:
		return h.handleWeatherRequest(client)
	default:
		h.logger.Debug("Ignoring unknown message type", logger.String("type", messageType))
		return nil
	}
}

// handleWeatherRequest sends the current home station report to the client
func (h *WebSocketHandler) handleWeatherRequest(client *websocket.Client) error {
	report := h.service.GetReport()

	message := &websocket.Message{
		Type: websocket.MessageTypeWeatherUpdate,
		Data: map[string]any{"report": report},
	}

	if !client.SendMessage(message) {
		return fmt.Errorf("failed to send weather report to client")
	}

	h.logger.Debug("Sent weather report to client", logger.String("station", report.Station))
	return nil
}
