package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalRequest represents a row of approval_requests.
type ApprovalRequest struct {
	RequestID    string          `db:"request_id"`
	EntityType   string          `db:"entity_type"`
	EntityID     string          `db:"entity_id"`
	ActionType   string          `db:"action_type"`
	Amount       decimal.Decimal `db:"amount"`
	Payload      *string         `db:"payload"`
	Status       string          `db:"status"`
	CurrentStage string          `db:"current_stage"`
	RequestedBy  string          `db:"requested_by"`
	RequestedAt  time.Time       `db:"requested_at"`
	CheckedBy    *string         `db:"checked_by"`
	CheckedAt    *time.Time      `db:"checked_at"`
	ApprovedBy   *string         `db:"approved_by"`
	ApprovedAt   *time.Time      `db:"approved_at"`
	AuthorizedBy *string         `db:"authorized_by"`
	AuthorizedAt *time.Time      `db:"authorized_at"`
	RejectedBy   *string         `db:"rejected_by"`
	ActionedAt   *time.Time      `db:"actioned_at"`
	AuditFields
}
