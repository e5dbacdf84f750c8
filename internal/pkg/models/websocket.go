package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WebSocketClient represents an active realtime connection. Scrapper
// clients carry the pincode their view is filtered on.
type WebSocketClient struct {
	UserID  string
	Role    string
	Pincode string
	Conn    *websocket.Conn
}

// WebSocketClaims are the JWT claims carried on a websocket handshake
type WebSocketClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// WSMessage is the envelope for all websocket pushes
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is pushed when an operation against the socket fails
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
