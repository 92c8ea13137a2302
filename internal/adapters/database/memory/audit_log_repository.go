package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
)

// AuditLogRepository implements portsrepo.AuditLogRepository in memory.
type AuditLogRepository struct {
	store *Store
}

var _ portsrepo.AuditLogRepository = (*AuditLogRepository)(nil)

func (r *AuditLogRepository) SaveAuditLog(_ context.Context, entry domain.AuditLogEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.auditLogs = append(r.store.auditLogs, entry)
	return nil
}

func (r *AuditLogRepository) ListAuditLogs(_ context.Context, filter portsrepo.AuditLogFilter) ([]domain.AuditLogEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var items []domain.AuditLogEntry
	for _, e := range r.store.auditLogs {
		if filter.EntityType != "" && e.EntityType != filter.EntityType {
			continue
		}
		if filter.EntityID != "" && e.EntityID != filter.EntityID {
			continue
		}
		if filter.Before != nil && !olderThan(e, *filter.Before, filter.BeforeID) {
			continue
		}
		items = append(items, e)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Timestamp.Equal(items[j].Timestamp) {
			return items[i].AuditLogID > items[j].AuditLogID
		}
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if filter.Limit > 0 && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, nil
}

func olderThan(e domain.AuditLogEntry, before time.Time, beforeID string) bool {
	if e.Timestamp.Equal(before) {
		return e.AuditLogID < beforeID
	}
	return e.Timestamp.Before(before)
}
