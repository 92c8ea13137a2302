package dto

import "github.com/SscSPs/cheque_management_app/internal/core/domain"

// ListAuditLogsParams defines query parameters for listing audit entries.
type ListAuditLogsParams struct {
	EntityType string `form:"entityType"`
	EntityID   string `form:"entityId"`
	Limit      int    `form:"limit,default=50" binding:"gte=1,lte=500"`
	NextToken  string `form:"nextToken"`
}

// ListAuditLogsResponse is one page of audit entries, newest first.
type ListAuditLogsResponse struct {
	Entries   []domain.AuditLogEntry `json:"entries"`
	NextToken string                 `json:"nextToken,omitempty"`
}
