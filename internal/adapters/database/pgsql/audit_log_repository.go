package pgsql

import (
	"context"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/cheque_management_app/internal/models"
	"github.com/SscSPs/cheque_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

// SaveAuditLog appends an entry. A trigger rejects UPDATE and DELETE on audit_logs.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	m := mapping.ToModelAuditLog(entry)
	query := `
		INSERT INTO audit_logs (audit_log_id, entity_type, entity_id, action, actor_id, old_value, new_value, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db(ctx).Exec(ctx, query,
		m.AuditLogID, m.EntityType, m.EntityID, m.Action, m.ActorID, m.OldValue, m.NewValue, m.Timestamp)
	return translateError(err, "audit log entry")
}

// ListAuditLogs pages newest first on (logged_at, audit_log_id).
func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, filter portsrepo.AuditLogFilter) ([]domain.AuditLogEntry, error) {
	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}
	query := `
		SELECT audit_log_id, entity_type, entity_id, action, actor_id, old_value, new_value, logged_at
		FROM audit_logs
		WHERE ($1 = '' OR entity_type = $1)
		  AND ($2 = '' OR entity_id = $2)
		  AND ($3::timestamptz IS NULL OR (logged_at, audit_log_id) < ($3, $4))
		ORDER BY logged_at DESC, audit_log_id DESC
		LIMIT $5`
	rows, err := r.db(ctx).Query(ctx, query, filter.EntityType, filter.EntityID, filter.Before, filter.BeforeID, limit)
	if err != nil {
		return nil, translateError(err, "audit logs")
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AuditLog])
	if err != nil {
		return nil, translateError(err, "audit logs")
	}
	entries := make([]domain.AuditLogEntry, 0, len(modelRows))
	for _, m := range modelRows {
		entries = append(entries, mapping.ToDomainAuditLog(m))
	}
	return entries, nil
}
