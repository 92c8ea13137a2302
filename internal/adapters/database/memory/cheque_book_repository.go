package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
)

// ChequeBookRepository implements portsrepo.ChequeBookRepositoryWithTx in memory.
type ChequeBookRepository struct {
	store *Store
}

var _ portsrepo.ChequeBookRepositoryFacade = (*ChequeBookRepository)(nil)

func (r *ChequeBookRepository) FindChequeBookByID(_ context.Context, chequeBookID string) (*domain.ChequeBook, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	book, ok := r.store.books[chequeBookID]
	if !ok {
		return nil, apperrors.NewNotFoundError("cheque book " + chequeBookID)
	}
	return &book, nil
}

func (r *ChequeBookRepository) ListChequeBooks(_ context.Context, accountID string, activeOnly bool) ([]domain.ChequeBook, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var books []domain.ChequeBook
	for _, b := range r.store.books {
		if (accountID == "" || b.AccountID == accountID) && (!activeOnly || b.Active) {
			books = append(books, b)
		}
	}
	sort.Slice(books, func(i, j int) bool {
		if books[i].CreatedAt.Equal(books[j].CreatedAt) {
			return books[i].StartNumber > books[j].StartNumber
		}
		return books[i].CreatedAt.After(books[j].CreatedAt)
	})
	return books, nil
}

func (r *ChequeBookRepository) FindOverlappingChequeBooks(_ context.Context, accountID string, start, end int64) ([]domain.ChequeBook, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.overlapping(accountID, start, end), nil
}

// overlapping expects the caller to hold the store lock.
func (r *ChequeBookRepository) overlapping(accountID string, start, end int64) []domain.ChequeBook {
	var books []domain.ChequeBook
	for _, b := range r.store.books {
		if b.Active && b.AccountID == accountID && b.Overlaps(start, end) {
			books = append(books, b)
		}
	}
	return books
}

// LockAccountAllocation is a no-op: memory transactions are already serialized.
func (r *ChequeBookRepository) LockAccountAllocation(context.Context, string) error {
	return nil
}

func (r *ChequeBookRepository) SaveChequeBook(_ context.Context, book domain.ChequeBook) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.books[book.ChequeBookID]; exists {
		return apperrors.NewDuplicateError("cheque book " + book.ChequeBookID)
	}
	if book.Active {
		if clash := r.overlapping(book.AccountID, book.StartNumber, book.EndNumber); len(clash) > 0 {
			return apperrors.NewConflictError(fmt.Sprintf("range %d-%d overlaps an active cheque book", book.StartNumber, book.EndNumber))
		}
	}
	r.store.books[book.ChequeBookID] = book
	return nil
}

func (r *ChequeBookRepository) UpdateChequeBook(_ context.Context, book *domain.ChequeBook) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.books[book.ChequeBookID]
	if !ok {
		return apperrors.NewNotFoundError("cheque book " + book.ChequeBookID)
	}
	if stored.Version != book.Version {
		return apperrors.NewConflictError("cheque book " + book.ChequeBookID + " was modified concurrently")
	}
	// the range is immutable
	stored.CurrentNumber = book.CurrentNumber
	stored.Active = book.Active
	stored.LastUpdatedAt = book.LastUpdatedAt
	stored.LastUpdatedBy = book.LastUpdatedBy
	stored.Version++
	r.store.books[book.ChequeBookID] = stored
	book.Version = stored.Version
	return nil
}
