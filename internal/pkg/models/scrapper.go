package models

import (
	"time"

	"github.com/google/uuid"
)

// ScrapperProfile represents the collector-specific profile attached to a
// user with role "scrapper". Scrappers are never hard-deleted; deactivation
// flips Available off.
type ScrapperProfile struct {
	UserID       uuid.UUID   `json:"user_id" db:"user_id"`
	Pincode      string      `json:"pincode" db:"pincode"`
	Available    bool        `json:"available" db:"available"`
	VehicleType  string      `json:"vehicle_type" db:"vehicle_type"`
	WorkingHours string      `json:"working_hours" db:"working_hours"`
	Materials    MaterialSet `json:"materials" db:"-"`
	Rating       float64     `json:"rating" db:"rating"`
	Latitude     *float64    `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64    `json:"longitude,omitempty" db:"longitude"`
	GeoCell      string      `json:"geo_cell,omitempty" db:"geo_cell"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// LocationPing is a scrapper position update
type LocationPing struct {
	Latitude  float64   `json:"latitude" validate:"required"`
	Longitude float64   `json:"longitude" validate:"required"`
	Timestamp time.Time `json:"timestamp"`
}
