package domain

import "time"

// AuditEntry records one admin action taken through the console. Entries back
// the activity-log page; the upstream platform has no equivalent endpoint.
type AuditEntry struct {
	ID         string         `json:"id"`
	SessionID  string         `json:"session_id,omitempty"`
	ActorID    string         `json:"actor_id,omitempty"`
	ActorEmail string         `json:"actor_email,omitempty"`
	Action     string         `json:"action"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
