package domain

import "time"

// Audit actions recorded by the auth flows.
const (
	AuditRegister          = "register"
	AuditLogin             = "login"
	AuditRefresh           = "refresh"
	AuditReplayInvalidated = "replay_invalidated"
	AuditLogout            = "logout"
)

// AuditEvent is a security-relevant occurrence on an account, persisted
// asynchronously to the audit trail.
type AuditEvent struct {
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
