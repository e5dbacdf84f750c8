package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/constants"
	jwtpkg "github.com/scrapcycle/scrapcycle/internal/pkg/jwt"
	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

// Manager manages WebSocket connections and client state
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	writers  map[*websocket.Conn]*sync.Mutex
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		writers: make(map[*websocket.Conn]*sync.Mutex),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()
	defer m.releaseWriter(ws)

	return handleClient(client, ws)
}

// writerLock returns the write mutex for a connection, creating it on first
// use. The relay goroutine and the client's read loop share one connection,
// and gorilla/websocket allows only a single concurrent writer.
func (m *Manager) writerLock(conn *websocket.Conn) *sync.Mutex {
	m.Lock()
	defer m.Unlock()

	mu, exists := m.writers[conn]
	if !exists {
		mu = &sync.Mutex{}
		m.writers[conn] = mu
	}
	return mu
}

func (m *Manager) releaseWriter(conn *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	delete(m.writers, conn)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	session, err := jwtpkg.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID:  session.UserID.String(),
		Role:    session.Role,
		Pincode: c.QueryParam("pincode"),
	}, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// ScrappersForPincode returns the connected scrapper clients whose view is
// filtered on the given postal area.
func (m *Manager) ScrappersForPincode(pincode string) []*models.WebSocketClient {
	m.RLock()
	defer m.RUnlock()

	var matched []*models.WebSocketClient
	for _, client := range m.clients {
		if client.Role == models.RoleScrapper && client.Pincode == pincode {
			matched = append(matched, client)
		}
	}
	return matched
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // tolerate clients that vanished between lookup and send
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	mu := m.writerLock(conn)
	mu.Lock()
	defer mu.Unlock()

	return conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends a notification to a specific client. Disconnected
// clients are skipped silently; the next full refresh catches them up.
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := m.SendMessage(client.Conn, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}
