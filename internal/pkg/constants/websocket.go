package constants

// WebSocket event types pushed to clients
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Full list refreshes triggered by the notification relay
	EventUserPickups     = "user_pickups"
	EventScrapperPickups = "scrapper_pickups"

	// Single-record lifecycle notifications
	EventPickupCreated   = "pickup_created"
	EventPickupScheduled = "pickup_scheduled"
	EventPickupRejected  = "pickup_rejected"
	EventPickupStatus    = "pickup_status"
	EventPickupCompleted = "pickup_completed"
	EventPointsAwarded   = "points_awarded"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
)
