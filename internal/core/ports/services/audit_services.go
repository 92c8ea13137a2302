package services

import (
	"context"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/dto"
)

// AuditTrailSvc records and queries the append-only audit trail.
type AuditTrailSvc interface {
	// Record appends one entry. Called with a transactional ctx it joins that transaction,
	// so a failed write fails the enclosing operation.
	Record(ctx context.Context, entityType, entityID, action, actorID, oldValue, newValue string) error

	// ListAuditLogs pages through entries newest first.
	ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) (*dto.ListAuditLogsResponse, error)

	// ListEntityHistory returns every entry of one entity, newest first.
	ListEntityHistory(ctx context.Context, entityType, entityID string) ([]domain.AuditLogEntry, error)
}
