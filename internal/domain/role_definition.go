package domain

import "time"

// RoleDefinition is a named, reusable bundle of capabilities assignable to an
// admin at creation. Definitions are owned by the upstream platform; the
// console only creates and lists them.
type RoleDefinition struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}
