package models

// RegisterRequest creates an account. Role defaults to "user" when empty.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullname" validate:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"omitempty,oneof=user scrapper"`
}

// LoginRequest is the email/password sign-in payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterScrapperRequest attaches a scrapper profile to an account
type RegisterScrapperRequest struct {
	Pincode      string   `json:"pincode" validate:"required,len=6,numeric"`
	VehicleType  string   `json:"vehicle_type" validate:"required"`
	WorkingHours string   `json:"working_hours"`
	Materials    []string `json:"materials" validate:"required,min=1"`
}

// SetAvailabilityRequest flips the scrapper availability flag
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}
