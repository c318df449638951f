package events

import (
	"time"
)

// EventType enumerates console events worth auditing.
type EventType string

const (
	EventSessionLoggedIn  EventType = "session_logged_in"
	EventSessionLoggedOut EventType = "session_logged_out"
	EventAccessDenied     EventType = "access_denied"
	EventRoleCreated      EventType = "role_created"
	EventAdminCreated     EventType = "admin_created"
	EventUserVerified     EventType = "user_verified"
	EventBroadcastSent    EventType = "broadcast_sent"
)

// Actor identifies the admin behind an event. Empty for failed logins.
type Actor struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
}

// Event represents a console action emitted by handlers and services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// AccessDeniedPayload records a login attempt with a non-admin role.
type AccessDeniedPayload struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// RoleCreatedPayload payload.
type RoleCreatedPayload struct {
	RoleID      string   `json:"role_id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// AdminCreatedPayload payload.
type AdminCreatedPayload struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	RoleID  string `json:"role_id"`
}

// UserVerifiedPayload payload.
type UserVerifiedPayload struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Note      string `json:"note,omitempty"`
}

// BroadcastSentPayload payload.
type BroadcastSentPayload struct {
	BroadcastID string `json:"broadcast_id"`
	Title       string `json:"title"`
	Audience    string `json:"audience"`
}
