package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/cheque_management_app/internal/models"
	"github.com/SscSPs/cheque_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const receivableColumns = `receivable_id, customer_id, internal_ref, cheque_number, bank_name, branch_name,
	amount, cheque_date, received_date, status, image_path, remarks, invoice_number,
	created_at, created_by, last_updated_at, last_updated_by, version`

type PgxReceivableRepository struct {
	BaseRepository
}

func newPgxReceivableRepository(pool *pgxpool.Pool) portsrepo.ReceivableRepositoryWithTx {
	return &PgxReceivableRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceivableRepositoryWithTx = (*PgxReceivableRepository)(nil)

func (r *PgxReceivableRepository) queryReceivables(ctx context.Context, query string, args ...any) ([]domain.Receivable, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "receivables")
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Receivable])
	if err != nil {
		return nil, translateError(err, "receivables")
	}
	receivables := make([]domain.Receivable, 0, len(modelRows))
	for _, m := range modelRows {
		receivables = append(receivables, mapping.ToDomainReceivable(m))
	}
	return receivables, nil
}

func (r *PgxReceivableRepository) queryOne(ctx context.Context, what, query string, args ...any) (*domain.Receivable, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, what)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Receivable])
	if err != nil {
		return nil, translateError(err, what)
	}
	rec := mapping.ToDomainReceivable(m)
	return &rec, nil
}

func (r *PgxReceivableRepository) FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	return r.queryOne(ctx, "receivable "+receivableID,
		`SELECT `+receivableColumns+` FROM incoming_cheques WHERE receivable_id = $1`, receivableID)
}

func (r *PgxReceivableRepository) FindReceivableByChequeNumber(ctx context.Context, chequeNumber, bankName string) (*domain.Receivable, error) {
	return r.queryOne(ctx, "receivable "+chequeNumber+"@"+bankName,
		`SELECT `+receivableColumns+` FROM incoming_cheques WHERE cheque_number = $1 AND bank_name = $2`, chequeNumber, bankName)
}

func (r *PgxReceivableRepository) ListReceivables(ctx context.Context, filter portsrepo.ReceivableFilter) ([]domain.Receivable, error) {
	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}
	query := `
		SELECT ` + receivableColumns + `
		FROM incoming_cheques
		WHERE ($1 = '' OR customer_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY received_date DESC, created_at DESC, receivable_id
		LIMIT $3 OFFSET $4`
	return r.queryReceivables(ctx, query, filter.CustomerID, string(filter.Status), limit, filter.Offset)
}

func (r *PgxReceivableRepository) ListDueReceivables(ctx context.Context, onOrBefore time.Time) ([]domain.Receivable, error) {
	query := `
		SELECT ` + receivableColumns + `
		FROM incoming_cheques
		WHERE status = 'PENDING' AND cheque_date <= $1::date
		ORDER BY cheque_date, receivable_id`
	return r.queryReceivables(ctx, query, onOrBefore)
}

// SaveReceivable inserts a receivable; the unique (cheque_number, bank_name) index yields ErrDuplicate.
func (r *PgxReceivableRepository) SaveReceivable(ctx context.Context, receivable domain.Receivable) error {
	m := mapping.ToModelReceivable(receivable)
	query := `
		INSERT INTO incoming_cheques (` + receivableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.db(ctx).Exec(ctx, query,
		m.ReceivableID, m.CustomerID, m.InternalRef, m.ChequeNumber, m.BankName, m.BranchName,
		m.Amount, m.ChequeDate, m.ReceivedDate, m.Status, m.ImagePath, m.Remarks, m.InvoiceNumber,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	return translateError(err, "receivable "+receivable.ChequeNumber+"@"+receivable.BankName)
}

func (r *PgxReceivableRepository) UpdateReceivable(ctx context.Context, receivable *domain.Receivable) error {
	m := mapping.ToModelReceivable(*receivable)
	query := `
		UPDATE incoming_cheques
		SET status = $1, image_path = $2, remarks = $3, invoice_number = $4,
		    last_updated_at = $5, last_updated_by = $6, version = version + 1
		WHERE receivable_id = $7 AND version = $8`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.Status, m.ImagePath, m.Remarks, m.InvoiceNumber, m.LastUpdatedAt, m.LastUpdatedBy, m.ReceivableID, m.Version)
	if err != nil {
		return translateError(err, "receivable "+receivable.ReceivableID)
	}
	if tag.RowsAffected() == 0 {
		return r.staleOrMissing(ctx, "incoming_cheques", "receivable_id", receivable.ReceivableID, "receivable "+receivable.ReceivableID)
	}
	receivable.Version++
	return nil
}
