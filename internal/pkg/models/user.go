package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser     = "user"
	RoleScrapper = "scrapper"
)

// User represents an account in the system (requester or scrapper)
type User struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	Email        string           `json:"email" db:"email"`
	FullName     string           `json:"fullname" db:"fullname"`
	Phone        string           `json:"phone" db:"phone"`
	PasswordHash string           `json:"-" db:"password_hash"`
	Role         string           `json:"role" db:"role"`
	IsActive     bool             `json:"is_active" db:"is_active"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at" db:"updated_at"`
	Scrapper     *ScrapperProfile `json:"scrapper_profile,omitempty" db:"-"`
}

// UserProfile is the editable profile payload for a requester account.
type UserProfile struct {
	FullName string `json:"fullname" validate:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Pincode  string `json:"pincode" validate:"omitempty,len=6,numeric"`
}

// Session is the authenticated identity passed into core operations. It is
// built from verified JWT claims at the boundary, never ambient global state.
type Session struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// AuthResponse represents the response after a successful sign-in
type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt int64     `json:"expires_at"`
}
