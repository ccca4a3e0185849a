package domain

import "time"

// Audit actions recorded by the auth core.
const (
	AuditLogin       = "login"
	AuditTokenVerify = "token_verify"
	AuditUserCreated = "user_created"
	AuditUserUpdated = "user_updated"
	AuditUserDeleted = "user_deleted"
)

// AuditEvent is a single authentication or lifecycle event destined for
// the audit trail. Reason is only set on failures.
type AuditEvent struct {
	Action    string    `json:"action"`
	Username  string    `json:"username,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Success   bool      `json:"success"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
