package models

import "time"

// AuditLog represents a row of audit_logs. Rows are never updated.
type AuditLog struct {
	AuditLogID string    `db:"audit_log_id"`
	EntityType string    `db:"entity_type"`
	EntityID   string    `db:"entity_id"`
	Action     string    `db:"action"`
	ActorID    string    `db:"actor_id"`
	OldValue   *string   `db:"old_value"`
	NewValue   *string   `db:"new_value"`
	Timestamp  time.Time `db:"logged_at"`
}
