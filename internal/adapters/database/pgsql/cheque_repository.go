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

var chequeColumnNames = []string{
	"cheque_id", "cheque_book_id", "cheque_number", "status", "workflow_status",
	"amount", "payee_name", "cheque_date", "vendor_id", "remarks",
	"created_at", "created_by", "last_updated_at", "last_updated_by", "version",
}

const chequeColumns = `cheque_id, cheque_book_id, cheque_number, status, workflow_status,
	amount, payee_name, cheque_date, vendor_id, remarks,
	created_at, created_by, last_updated_at, last_updated_by, version`

type PgxChequeRepository struct {
	BaseRepository
}

func newPgxChequeRepository(pool *pgxpool.Pool) portsrepo.ChequeRepositoryWithTx {
	return &PgxChequeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChequeRepositoryWithTx = (*PgxChequeRepository)(nil)

func (r *PgxChequeRepository) queryCheques(ctx context.Context, query string, args ...any) ([]domain.Cheque, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "cheques")
	}
	modelCheques, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Cheque])
	if err != nil {
		return nil, translateError(err, "cheques")
	}
	cheques := make([]domain.Cheque, 0, len(modelCheques))
	for _, m := range modelCheques {
		cheques = append(cheques, mapping.ToDomainCheque(m))
	}
	return cheques, nil
}

func (r *PgxChequeRepository) queryOne(ctx context.Context, what, query string, args ...any) (*domain.Cheque, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, what)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Cheque])
	if err != nil {
		return nil, translateError(err, what)
	}
	cheque := mapping.ToDomainCheque(m)
	return &cheque, nil
}

// FindChequeByID retrieves a cheque by its ID.
func (r *PgxChequeRepository) FindChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error) {
	return r.queryOne(ctx, "cheque "+chequeID, `SELECT `+chequeColumns+` FROM cheques WHERE cheque_id = $1`, chequeID)
}

func (r *PgxChequeRepository) ListChequesByBook(ctx context.Context, chequeBookID string) ([]domain.Cheque, error) {
	return r.queryCheques(ctx, `SELECT `+chequeColumns+` FROM cheques WHERE cheque_book_id = $1 ORDER BY cheque_number`, chequeBookID)
}

// FindLowestUnusedCheque skips leaves that already carry a draft.
func (r *PgxChequeRepository) FindLowestUnusedCheque(ctx context.Context, chequeBookID string) (*domain.Cheque, error) {
	query := `
		SELECT ` + chequeColumns + `
		FROM cheques
		WHERE cheque_book_id = $1 AND status = 'UNUSED' AND amount IS NULL
		ORDER BY cheque_number
		LIMIT 1`
	return r.queryOne(ctx, "unused cheque in book "+chequeBookID, query, chequeBookID)
}

func (r *PgxChequeRepository) ListDueCheques(ctx context.Context, statuses []domain.ChequeStatus, onOrBefore time.Time) ([]domain.Cheque, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	query := `
		SELECT ` + chequeColumns + `
		FROM cheques
		WHERE status = ANY($1) AND cheque_date IS NOT NULL AND cheque_date <= $2::date
		ORDER BY cheque_date, cheque_number`
	return r.queryCheques(ctx, query, names, onOrBefore)
}

// SaveCheques streams the leaves with COPY.
func (r *PgxChequeRepository) SaveCheques(ctx context.Context, cheques []domain.Cheque) error {
	if len(cheques) == 0 {
		return nil
	}
	_, err := r.db(ctx).CopyFrom(ctx, pgx.Identifier{"cheques"}, chequeColumnNames,
		pgx.CopyFromSlice(len(cheques), func(i int) ([]any, error) {
			m := mapping.ToModelCheque(cheques[i])
			return []any{
				m.ChequeID, m.ChequeBookID, m.ChequeNumber, m.Status, m.WorkflowStatus,
				m.Amount, m.PayeeName, m.ChequeDate, m.VendorID, m.Remarks,
				m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
			}, nil
		}))
	return translateError(err, "cheque leaves of book "+cheques[0].ChequeBookID)
}

func (r *PgxChequeRepository) UpdateCheque(ctx context.Context, cheque *domain.Cheque) error {
	m := mapping.ToModelCheque(*cheque)
	query := `
		UPDATE cheques
		SET status = $1, workflow_status = $2, amount = $3, payee_name = $4, cheque_date = $5,
		    vendor_id = $6, remarks = $7, last_updated_at = $8, last_updated_by = $9, version = version + 1
		WHERE cheque_id = $10 AND version = $11`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.Status, m.WorkflowStatus, m.Amount, m.PayeeName, m.ChequeDate,
		m.VendorID, m.Remarks, m.LastUpdatedAt, m.LastUpdatedBy, m.ChequeID, m.Version)
	if err != nil {
		return translateError(err, "cheque "+cheque.ChequeID)
	}
	if tag.RowsAffected() == 0 {
		return r.staleOrMissing(ctx, "cheques", "cheque_id", cheque.ChequeID, "cheque "+cheque.ChequeID)
	}
	cheque.Version++
	return nil
}
