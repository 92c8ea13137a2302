package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
)

// AuditLogFilter narrows ListAuditLogs. Entries are returned newest first and a zero Limit
// returns everything. When Before is set only entries strictly older than (Before, BeforeID)
// are returned.
type AuditLogFilter struct {
	EntityType string
	EntityID   string
	Limit      int
	Before     *time.Time
	BeforeID   string
}

// AuditLogRepository is append-only: there is no update or delete.
type AuditLogRepository interface {
	// SaveAuditLog appends an entry.
	SaveAuditLog(ctx context.Context, entry domain.AuditLogEntry) error

	// ListAuditLogs returns entries matching the filter.
	ListAuditLogs(ctx context.Context, filter AuditLogFilter) ([]domain.AuditLogEntry, error)
}
