package domain

import "time"

// Role classifies platform accounts. Only RoleAdmin may use the console;
// the other roles exist because upstream returns them on user records.
type Role string

const (
	RoleWarrior   Role = "warrior"
	RoleGuardian  Role = "guardian"
	RoleCaregiver Role = "caregiver"
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
)

// UserStatus represents lifecycle states for a platform account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// Identity is the snapshot of an authenticated principal as returned by the
// upstream platform. Permissions is the raw capability-name list from the
// wire; an absent list means no permissions, never all permissions.
type Identity struct {
	ID               string     `json:"id"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	PhoneNumber      string     `json:"phone_number,omitempty"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	Role             Role       `json:"role"`
	Age              int        `json:"age,omitempty"`
	Status           UserStatus `json:"status,omitempty"`
	Permissions      []string   `json:"permissions,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at,omitempty"`
}
