package models

import (
	"time"

	"github.com/google/uuid"
)

// PickupStatus represents the current status of a pickup request
type PickupStatus string

const (
	PickupStatusRequested PickupStatus = "REQUESTED"
	PickupStatusScheduled PickupStatus = "SCHEDULED"
	PickupStatusEnRoute   PickupStatus = "EN_ROUTE"
	PickupStatusArrived   PickupStatus = "ARRIVED"
	PickupStatusCompleted PickupStatus = "COMPLETED"
	PickupStatusRejected  PickupStatus = "REJECTED"
)

// pickupTransitions holds the legal forward transitions. Terminal states
// have no outgoing edges; transitions never move backward.
var pickupTransitions = map[PickupStatus][]PickupStatus{
	PickupStatusRequested: {PickupStatusScheduled, PickupStatusRejected},
	PickupStatusScheduled: {PickupStatusEnRoute, PickupStatusCompleted, PickupStatusRejected},
	PickupStatusEnRoute:   {PickupStatusArrived},
	PickupStatusArrived:   {PickupStatusCompleted},
}

// CanTransition reports whether moving from -> to is a legal forward step.
func (from PickupStatus) CanTransition(to PickupStatus) bool {
	for _, next := range pickupTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status accepts no further transitions.
func (s PickupStatus) IsTerminal() bool {
	return s == PickupStatusCompleted || s == PickupStatusRejected
}

// IsValid reports whether the status is one of the known states.
func (s PickupStatus) IsValid() bool {
	switch s {
	case PickupStatusRequested, PickupStatusScheduled, PickupStatusEnRoute,
		PickupStatusArrived, PickupStatusCompleted, PickupStatusRejected:
		return true
	}
	return false
}

// PickupRequest represents a scheduled scrap pickup. ScrapperID is nil
// exactly while Status is REQUESTED; acceptance assigns it atomically.
type PickupRequest struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	UserID     uuid.UUID    `json:"user_id" db:"user_id"`
	ScrapperID *uuid.UUID   `json:"scrapper_id,omitempty" db:"scrapper_id"`
	WeightKg   float64      `json:"weight_kg" db:"weight_kg"`
	Address    string       `json:"address" db:"address"`
	Pincode    string       `json:"pincode" db:"pincode"`
	Date       time.Time    `json:"date" db:"pickup_date"`
	TimeSlot   TimeSlot     `json:"time_slot" db:"time_slot"`
	Materials  MaterialSet  `json:"materials" db:"-"`
	Status     PickupStatus `json:"status" db:"status"`
	Price      *float64     `json:"price,omitempty" db:"price"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" db:"updated_at"`
}

// CreatePickupRequest is the client payload for scheduling a pickup
type CreatePickupRequest struct {
	WeightKg  float64  `json:"weight" validate:"required"`
	Address   string   `json:"address" validate:"required"`
	Pincode   string   `json:"pincode" validate:"required"`
	Date      string   `json:"date" validate:"required"` // YYYY-MM-DD
	TimeSlot  string   `json:"time_slot" validate:"required"`
	Materials []string `json:"type" validate:"required"`
}

// CreatePickupResponse carries the persisted record plus the advisory
// scrapper candidates for the pickup's area. No scrapper is assigned
// synchronously; assignment happens via accept.
type CreatePickupResponse struct {
	Pickup     *PickupRequest    `json:"pickup"`
	Candidates []ScrapperProfile `json:"candidates"`
}

// AcceptPickupRequest is the scrapper claim payload
type AcceptPickupRequest struct {
	PickupID   uuid.UUID `json:"pickup_id" validate:"required"`
	ScrapperID uuid.UUID `json:"scrapper_id" validate:"required"`
}

// AdvancePickupRequest moves a pickup to the next lifecycle status
type AdvancePickupRequest struct {
	Status PickupStatus `json:"status" validate:"required"`
	Price  *float64     `json:"price,omitempty"`
}
