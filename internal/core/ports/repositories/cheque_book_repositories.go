package repositories

import (
	"context"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
)

// ChequeBookReader defines read operations for cheque book data
type ChequeBookReader interface {
	// FindChequeBookByID retrieves a cheque book by its unique identifier.
	FindChequeBookByID(ctx context.Context, chequeBookID string) (*domain.ChequeBook, error)

	// ListChequeBooks lists the books of an account, newest first. An empty accountID lists all books.
	ListChequeBooks(ctx context.Context, accountID string, activeOnly bool) ([]domain.ChequeBook, error)

	// FindOverlappingChequeBooks returns the active books of the account whose range intersects [start, end].
	FindOverlappingChequeBooks(ctx context.Context, accountID string, start, end int64) ([]domain.ChequeBook, error)
}

// ChequeBookWriter defines write operations for cheque book data
type ChequeBookWriter interface {
	// LockAccountAllocation serializes allocations for an account until the surrounding
	// transaction ends.
	LockAccountAllocation(ctx context.Context, accountID string) error

	// SaveChequeBook persists a new cheque book.
	SaveChequeBook(ctx context.Context, book domain.ChequeBook) error

	// UpdateChequeBook writes the mutable fields (cursor, active flag) if the stored version
	// still equals book.Version, then bumps book.Version.
	UpdateChequeBook(ctx context.Context, book *domain.ChequeBook) error
}

// ChequeBookRepositoryFacade combines all cheque book repository interfaces
type ChequeBookRepositoryFacade interface {
	ChequeBookReader
	ChequeBookWriter
}

// ChequeBookRepositoryWithTx extends ChequeBookRepositoryFacade with transaction capabilities
type ChequeBookRepositoryWithTx interface {
	ChequeBookRepositoryFacade
	TransactionManager
}
