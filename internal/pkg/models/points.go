package models

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntry is one immutable signed point delta. A user's balance is the
// sum of their entries; it is never stored as mutable state.
type LedgerEntry struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`
	Points       int        `json:"points" db:"points"`
	PickupID     *uuid.UUID `json:"pickup_id,omitempty" db:"pickup_id"`
	RedemptionID *uuid.UUID `json:"redemption_id,omitempty" db:"redemption_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// Reward is a redeemable catalog item
type Reward struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	PointsRequired int       `json:"points_required" db:"points_required"`
	Active         bool      `json:"active" db:"active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Redemption links a user to a claimed reward; it is the fact that produced
// the matching negative ledger entry.
type Redemption struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	RewardID  uuid.UUID `json:"reward_id" db:"reward_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Impact holds the environmental-equivalence figures for recycled weight
type Impact struct {
	TreesSaved   int     `json:"trees_saved"`
	CO2Reduction float64 `json:"co2_reduction"`
	EnergySaved  float64 `json:"energy_saved"`
}

// AwardPointsRequest is the backfill payload for awarding points directly
type AwardPointsRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	PickupID uuid.UUID `json:"pickup_id" validate:"required"`
	WeightKg float64   `json:"weight_kg" validate:"required,gt=0"`
}

// RedeemRewardRequest is the redemption payload
type RedeemRewardRequest struct {
	RewardID uuid.UUID `json:"reward_id" validate:"required"`
}
