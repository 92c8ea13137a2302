package domain

import "time"

// Audit actions written by the core.
const (
	AuditCreate               = "CREATE"
	AuditUpdate               = "UPDATE"
	AuditStatusChange         = "STATUS_CHANGE"
	AuditPrinted              = "PRINTED"
	AuditDeactivate           = "DEACTIVATE"
	AuditImageAttached        = "IMAGE_ATTACHED"
	AuditDueDateReached       = "DUE_DATE_REACHED"
	AuditWorkflowInitiated    = "WORKFLOW_INITIATED"
	AuditWorkflowAdvanced     = "WORKFLOW_ADVANCED"
	AuditWorkflowApproved     = "WORKFLOW_APPROVED"
	AuditWorkflowRejected     = "WORKFLOW_REJECTED"
	EntityTypeChequeBook      = "ChequeBook"
	EntityTypeApprovalRequest = "ApprovalRequest"
)

// AuditLogEntry is an immutable record of one state change.
type AuditLogEntry struct {
	AuditLogID string    `json:"auditLogID"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityID"`
	Action     string    `json:"action"`
	ActorID    string    `json:"actorID"`
	OldValue   string    `json:"oldValue"`
	NewValue   string    `json:"newValue"`
	Timestamp  time.Time `json:"timestamp"`
}
