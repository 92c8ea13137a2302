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

const chequeBookColumns = `cheque_book_id, account_id, series_identifier, start_number, end_number,
	current_number, issued_date, active, created_at, created_by, last_updated_at, last_updated_by, version`

type PgxChequeBookRepository struct {
	BaseRepository
}

func newPgxChequeBookRepository(pool *pgxpool.Pool) portsrepo.ChequeBookRepositoryWithTx {
	return &PgxChequeBookRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChequeBookRepositoryWithTx = (*PgxChequeBookRepository)(nil)

func (r *PgxChequeBookRepository) queryBooks(ctx context.Context, query string, args ...any) ([]domain.ChequeBook, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "cheque books")
	}
	modelBooks, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ChequeBook])
	if err != nil {
		return nil, translateError(err, "cheque books")
	}
	books := make([]domain.ChequeBook, 0, len(modelBooks))
	for _, m := range modelBooks {
		books = append(books, mapping.ToDomainChequeBook(m))
	}
	return books, nil
}

// FindChequeBookByID retrieves a cheque book by its ID.
func (r *PgxChequeBookRepository) FindChequeBookByID(ctx context.Context, chequeBookID string) (*domain.ChequeBook, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+chequeBookColumns+` FROM cheque_books WHERE cheque_book_id = $1`, chequeBookID)
	if err != nil {
		return nil, translateError(err, "cheque book "+chequeBookID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ChequeBook])
	if err != nil {
		return nil, translateError(err, "cheque book "+chequeBookID)
	}
	book := mapping.ToDomainChequeBook(m)
	return &book, nil
}

// ListChequeBooks lists books newest first.
func (r *PgxChequeBookRepository) ListChequeBooks(ctx context.Context, accountID string, activeOnly bool) ([]domain.ChequeBook, error) {
	query := `
		SELECT ` + chequeBookColumns + `
		FROM cheque_books
		WHERE ($1 = '' OR account_id = $1)
		  AND (NOT $2 OR active)
		ORDER BY created_at DESC, start_number DESC`
	return r.queryBooks(ctx, query, accountID, activeOnly)
}

// FindOverlappingChequeBooks uses the int8range overlap operator backed by the gist index.
func (r *PgxChequeBookRepository) FindOverlappingChequeBooks(ctx context.Context, accountID string, start, end int64) ([]domain.ChequeBook, error) {
	query := `
		SELECT ` + chequeBookColumns + `
		FROM cheque_books
		WHERE account_id = $1
		  AND active
		  AND int8range(start_number, end_number, '[]') && int8range($2, $3, '[]')
		ORDER BY start_number`
	return r.queryBooks(ctx, query, accountID, start, end)
}

// LockAccountAllocation takes a transaction scoped advisory lock keyed by the account.
func (r *PgxChequeBookRepository) LockAccountAllocation(ctx context.Context, accountID string) error {
	_, err := r.db(ctx).Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('chequebook:' || $1))`, accountID)
	return translateError(err, "allocation lock for account "+accountID)
}

// SaveChequeBook inserts a new book. The exclusion constraint rejects overlapping active ranges.
func (r *PgxChequeBookRepository) SaveChequeBook(ctx context.Context, book domain.ChequeBook) error {
	m := mapping.ToModelChequeBook(book)
	query := `
		INSERT INTO cheque_books (` + chequeBookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db(ctx).Exec(ctx, query,
		m.ChequeBookID, m.AccountID, m.SeriesIdentifier, m.StartNumber, m.EndNumber,
		m.CurrentNumber, m.IssuedDate, m.Active,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	return translateError(err, "cheque book "+book.ChequeBookID)
}

// UpdateChequeBook writes the cursor and active flag under a version check.
func (r *PgxChequeBookRepository) UpdateChequeBook(ctx context.Context, book *domain.ChequeBook) error {
	query := `
		UPDATE cheque_books
		SET current_number = $1, active = $2, last_updated_at = $3, last_updated_by = $4, version = version + 1
		WHERE cheque_book_id = $5 AND version = $6`
	tag, err := r.db(ctx).Exec(ctx, query,
		book.CurrentNumber, book.Active, book.LastUpdatedAt, book.LastUpdatedBy, book.ChequeBookID, book.Version)
	if err != nil {
		return translateError(err, "cheque book "+book.ChequeBookID)
	}
	if tag.RowsAffected() == 0 {
		return r.staleOrMissing(ctx, "cheque_books", "cheque_book_id", book.ChequeBookID, "cheque book "+book.ChequeBookID)
	}
	book.Version++
	return nil
}
