package models

import "time"

// OTP represents a one-time sign-in code kept in Redis until it expires or
// is verified.
type OTP struct {
	Email      string    `json:"email"`
	Code       string    `json:"code"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	IsVerified bool      `json:"is_verified"`
}

// GenerateOTPRequest asks for a code to be issued
type GenerateOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest exchanges a code for a session token
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}
