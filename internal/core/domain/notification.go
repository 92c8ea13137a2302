package domain

import "time"

// Notification types published by the core.
const (
	NotificationApprovalPending   = "APPROVAL_PENDING"
	NotificationApprovalCompleted = "APPROVAL_COMPLETED"
	NotificationApprovalRejected  = "APPROVAL_REJECTED"
	NotificationPdcDue            = "PDC_DUE"
)

// Notification is a best-effort message for humans watching the workflow.
type Notification struct {
	Type       string    `json:"type"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityID"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}
