package constants

// NATS subjects for the pickup change feed
const (
	SubjectPickupCreated   = "pickup.created"
	SubjectPickupScheduled = "pickup.scheduled"
	SubjectPickupRejected  = "pickup.rejected"
	SubjectPickupStatus    = "pickup.status"
	SubjectPickupCompleted = "pickup.completed"

	// Wildcard covering every pickup event
	SubjectPickupAll = "pickup.>"
)
