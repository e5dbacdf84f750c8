package websocket

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/constants"
	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	wspkg "github.com/scrapcycle/scrapcycle/internal/pkg/websocket"
	"github.com/scrapcycle/scrapcycle/services/notify"
)

// WebSocketHandler serves the realtime endpoint. Each connected client is
// registered with the shared manager so the relay can push refreshes.
type WebSocketHandler struct {
	manager *wspkg.Manager
	lister  notify.PickupLister
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(manager *wspkg.Manager, lister notify.PickupLister) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
		lister:  lister,
	}
}

// RegisterRoutes registers the realtime endpoint
func (h *WebSocketHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.HandleWebSocket)
}

// HandleWebSocket upgrades the connection, pushes the initial view and
// keeps reading until the client disconnects.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	if err := h.sendInitialView(client, ws); err != nil {
		logger.Warn("Failed to push initial view",
			logger.String("user_id", client.UserID),
			logger.Err(err))
	}

	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			break
		}

		switch msg.Event {
		case constants.EventPing:
			if err := h.manager.SendMessage(ws, constants.EventPong, nil); err != nil {
				logger.Warn("Failed to send pong", logger.Err(err))
			}
		default:
			if err := h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "unknown event"); err != nil {
				logger.Warn("Failed to send error message", logger.Err(err))
			}
		}
	}

	logger.Info("WebSocket client disconnected", logger.String("user_id", client.UserID))

	return nil
}

// sendInitialView pushes the full list the client's role depends on, so a
// reconnecting client catches up on events dropped while it was away.
func (h *WebSocketHandler) sendInitialView(client *models.WebSocketClient, ws *websocket.Conn) error {
	ctx := context.Background()

	if client.Role == models.RoleScrapper && client.Pincode != "" {
		pickups, err := h.lister.ListRequestsForScrapper(ctx, client.Pincode, models.PickupStatusRequested)
		if err != nil {
			return err
		}
		return h.manager.SendMessage(ws, constants.EventScrapperPickups, pickups)
	}

	userID, err := uuid.Parse(client.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid user ID")
	}
	pickups, err := h.lister.ListRequestsForUser(ctx, userID)
	if err != nil {
		return err
	}
	return h.manager.SendMessage(ws, constants.EventUserPickups, pickups)
}
