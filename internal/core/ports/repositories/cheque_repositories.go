package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
)

// ChequeReader defines read operations for outgoing cheque data
type ChequeReader interface {
	// FindChequeByID retrieves a cheque by its unique identifier.
	FindChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error)

	// ListChequesByBook returns the leaves of a book in ascending number order.
	ListChequesByBook(ctx context.Context, chequeBookID string) ([]domain.Cheque, error)

	// FindLowestUnusedCheque returns the lowest numbered UNUSED leaf of a book.
	FindLowestUnusedCheque(ctx context.Context, chequeBookID string) (*domain.Cheque, error)

	// ListDueCheques returns cheques in one of statuses whose cheque date is on or before the given day.
	ListDueCheques(ctx context.Context, statuses []domain.ChequeStatus, onOrBefore time.Time) ([]domain.Cheque, error)
}

// ChequeWriter defines write operations for outgoing cheque data
type ChequeWriter interface {
	// SaveCheques bulk inserts freshly materialized leaves.
	SaveCheques(ctx context.Context, cheques []domain.Cheque) error

	// UpdateCheque writes the cheque if the stored version still equals cheque.Version,
	// then bumps cheque.Version. A stale version yields apperrors.ErrConflict.
	UpdateCheque(ctx context.Context, cheque *domain.Cheque) error
}

// ChequeRepositoryFacade combines all cheque repository interfaces
type ChequeRepositoryFacade interface {
	ChequeReader
	ChequeWriter
}

// ChequeRepositoryWithTx extends ChequeRepositoryFacade with transaction capabilities
type ChequeRepositoryWithTx interface {
	ChequeRepositoryFacade
	TransactionManager
}
