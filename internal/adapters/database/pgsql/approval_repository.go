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

// payload is stored as jsonb and read back as text so it round-trips as a raw string.
const approvalColumns = `request_id, entity_type, entity_id, action_type, amount, payload::text AS payload,
	status, current_stage, requested_by, requested_at, checked_by, checked_at,
	approved_by, approved_at, authorized_by, authorized_at, rejected_by, actioned_at,
	created_at, created_by, last_updated_at, last_updated_by, version`

type PgxApprovalRequestRepository struct {
	BaseRepository
}

func newPgxApprovalRequestRepository(pool *pgxpool.Pool) portsrepo.ApprovalRequestRepositoryWithTx {
	return &PgxApprovalRequestRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ApprovalRequestRepositoryWithTx = (*PgxApprovalRequestRepository)(nil)

func (r *PgxApprovalRequestRepository) findOne(ctx context.Context, query, requestID string) (*domain.ApprovalRequest, error) {
	rows, err := r.db(ctx).Query(ctx, query, requestID)
	if err != nil {
		return nil, translateError(err, "approval request "+requestID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ApprovalRequest])
	if err != nil {
		return nil, translateError(err, "approval request "+requestID)
	}
	req := mapping.ToDomainApprovalRequest(m)
	return &req, nil
}

func (r *PgxApprovalRequestRepository) FindApprovalRequestByID(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	return r.findOne(ctx, `SELECT `+approvalColumns+` FROM approval_requests WHERE request_id = $1`, requestID)
}

// FindApprovalRequestForUpdate row-locks the request; outside a transaction the lock is released immediately.
func (r *PgxApprovalRequestRepository) FindApprovalRequestForUpdate(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	return r.findOne(ctx, `SELECT `+approvalColumns+` FROM approval_requests WHERE request_id = $1 FOR UPDATE`, requestID)
}

func (r *PgxApprovalRequestRepository) queryRequests(ctx context.Context, query string, args ...any) ([]domain.ApprovalRequest, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "approval requests")
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ApprovalRequest])
	if err != nil {
		return nil, translateError(err, "approval requests")
	}
	requests := make([]domain.ApprovalRequest, 0, len(modelRows))
	for _, m := range modelRows {
		requests = append(requests, mapping.ToDomainApprovalRequest(m))
	}
	return requests, nil
}

func (r *PgxApprovalRequestRepository) ListPendingApprovalRequests(ctx context.Context, stages []domain.Stage) ([]domain.ApprovalRequest, error) {
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = string(s)
	}
	return r.queryRequests(ctx, `
		SELECT `+approvalColumns+`
		FROM approval_requests
		WHERE status = 'PENDING'
		  AND (cardinality($1::text[]) = 0 OR current_stage = ANY($1))
		ORDER BY requested_at, request_id`, names)
}

func (r *PgxApprovalRequestRepository) ListPendingApprovalRequestsForEntity(ctx context.Context, entityType, entityID string) ([]domain.ApprovalRequest, error) {
	return r.queryRequests(ctx, `
		SELECT `+approvalColumns+`
		FROM approval_requests
		WHERE status = 'PENDING' AND entity_type = $1 AND entity_id = $2
		ORDER BY requested_at, request_id`, entityType, entityID)
}

func (r *PgxApprovalRequestRepository) SaveApprovalRequest(ctx context.Context, request domain.ApprovalRequest) error {
	m := mapping.ToModelApprovalRequest(request)
	query := `
		INSERT INTO approval_requests (
			request_id, entity_type, entity_id, action_type, amount, payload,
			status, current_stage, requested_by, requested_at,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db(ctx).Exec(ctx, query,
		m.RequestID, m.EntityType, m.EntityID, m.ActionType, m.Amount, m.Payload,
		m.Status, m.CurrentStage, m.RequestedBy, m.RequestedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	return translateError(err, "approval request "+request.RequestID)
}

func (r *PgxApprovalRequestRepository) UpdateApprovalRequest(ctx context.Context, request *domain.ApprovalRequest) error {
	m := mapping.ToModelApprovalRequest(*request)
	query := `
		UPDATE approval_requests
		SET status = $1, current_stage = $2, amount = $3,
		    checked_by = $4, checked_at = $5, approved_by = $6, approved_at = $7,
		    authorized_by = $8, authorized_at = $9, rejected_by = $10, actioned_at = $11,
		    last_updated_at = $12, last_updated_by = $13, version = version + 1
		WHERE request_id = $14 AND version = $15`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.Status, m.CurrentStage, m.Amount,
		m.CheckedBy, m.CheckedAt, m.ApprovedBy, m.ApprovedAt,
		m.AuthorizedBy, m.AuthorizedAt, m.RejectedBy, m.ActionedAt,
		m.LastUpdatedAt, m.LastUpdatedBy, m.RequestID, m.Version)
	if err != nil {
		return translateError(err, "approval request "+request.RequestID)
	}
	if tag.RowsAffected() == 0 {
		return r.staleOrMissing(ctx, "approval_requests", "request_id", request.RequestID, "approval request "+request.RequestID)
	}
	request.Version++
	return nil
}
