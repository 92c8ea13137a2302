package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
)

// ReceivableFilter narrows ListReceivables. Zero values match everything.
type ReceivableFilter struct {
	CustomerID string
	Status     domain.ReceivableStatus
	Limit      int
	Offset     int
}

// ReceivableReader defines read operations for incoming cheque data
type ReceivableReader interface {
	// FindReceivableByID retrieves a receivable by its unique identifier.
	FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error)

	// FindReceivableByChequeNumber looks up the (chequeNumber, bankName) pair.
	FindReceivableByChequeNumber(ctx context.Context, chequeNumber, bankName string) (*domain.Receivable, error)

	// ListReceivables returns receivables matching the filter, newest received first.
	ListReceivables(ctx context.Context, filter ReceivableFilter) ([]domain.Receivable, error)

	// ListDueReceivables returns PENDING receivables whose cheque date is on or before the given day.
	ListDueReceivables(ctx context.Context, onOrBefore time.Time) ([]domain.Receivable, error)
}

// ReceivableWriter defines write operations for incoming cheque data
type ReceivableWriter interface {
	// SaveReceivable persists a new receivable. A duplicate (chequeNumber, bankName) yields apperrors.ErrDuplicate.
	SaveReceivable(ctx context.Context, receivable domain.Receivable) error

	// UpdateReceivable writes the receivable under an optimistic version check and bumps receivable.Version.
	UpdateReceivable(ctx context.Context, receivable *domain.Receivable) error
}

// ReceivableRepositoryFacade combines all receivable repository interfaces
type ReceivableRepositoryFacade interface {
	ReceivableReader
	ReceivableWriter
}

// ReceivableRepositoryWithTx extends ReceivableRepositoryFacade with transaction capabilities
type ReceivableRepositoryWithTx interface {
	ReceivableRepositoryFacade
	TransactionManager
}
