package models

// PickupEventKind identifies a change on the pickups table
type PickupEventKind string

const (
	PickupEventCreated   PickupEventKind = "created"
	PickupEventScheduled PickupEventKind = "scheduled"
	PickupEventRejected  PickupEventKind = "rejected"
	PickupEventStatus    PickupEventKind = "status"
	PickupEventCompleted PickupEventKind = "completed"
)

// PickupEvent is the typed change event published on the pickup bus and
// consumed by the notification relay and the points consumer.
type PickupEvent struct {
	Kind   PickupEventKind `json:"kind"`
	Pickup PickupRequest   `json:"pickup"`
}
