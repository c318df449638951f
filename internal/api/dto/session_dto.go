package dto

import (
	"time"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
)

// LoginRequest payload for console login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse returns the console token and identity snapshot.
type SessionResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	User      *domain.Identity `json:"user"`
}

// UpdateProfileRequest payload for profile edits.
type UpdateProfileRequest struct {
	FullName         string `json:"full_name,omitempty"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ForgotPasswordRequest payload.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest payload.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}
