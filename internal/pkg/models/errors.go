package models

import "errors"

// Domain error taxonomy. Every core operation surfaces one of these so
// handlers can map failures to HTTP statuses with errors.Is.
var (
	// ErrValidation indicates a bad input shape or range, surfaced to the
	// caller for correction.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the referenced entity is absent.
	ErrNotFound = errors.New("requested resource not found")

	// ErrConflict indicates a concurrent state race, e.g. two scrappers
	// accepting the same pickup.
	ErrConflict = errors.New("resource conflict")

	// ErrInvalidTransition indicates an illegal pickup status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInsufficientPoints indicates a redemption larger than the balance.
	ErrInsufficientPoints = errors.New("insufficient points balance")

	// ErrInvalidCredentials indicates a failed email/password or OTP check.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrBackendUnavailable indicates a transient dependency failure. There
	// is no automatic retry; the caller decides whether to try again.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
