package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
)

// ReceivableRepository implements portsrepo.ReceivableRepositoryFacade in memory.
type ReceivableRepository struct {
	store *Store
}

var _ portsrepo.ReceivableRepositoryFacade = (*ReceivableRepository)(nil)

func (r *ReceivableRepository) FindReceivableByID(_ context.Context, receivableID string) (*domain.Receivable, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.receivables[receivableID]
	if !ok {
		return nil, apperrors.NewNotFoundError("receivable " + receivableID)
	}
	return &rec, nil
}

func (r *ReceivableRepository) FindReceivableByChequeNumber(_ context.Context, chequeNumber, bankName string) (*domain.Receivable, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, rec := range r.store.receivables {
		if rec.ChequeNumber == chequeNumber && rec.BankName == bankName {
			return &rec, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("receivable %s/%s", bankName, chequeNumber))
}

func (r *ReceivableRepository) ListReceivables(_ context.Context, filter portsrepo.ReceivableFilter) ([]domain.Receivable, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var items []domain.Receivable
	for _, rec := range r.store.receivables {
		if (filter.CustomerID == "" || rec.CustomerID == filter.CustomerID) && (filter.Status == "" || rec.Status == filter.Status) {
			items = append(items, rec)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].ReceivedDate.Equal(items[j].ReceivedDate) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ReceivedDate.After(items[j].ReceivedDate)
	})
	if filter.Offset > 0 {
		if filter.Offset >= len(items) {
			return nil, nil
		}
		items = items[filter.Offset:]
	}
	if filter.Limit > 0 && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, nil
}

func (r *ReceivableRepository) ListDueReceivables(_ context.Context, onOrBefore time.Time) ([]domain.Receivable, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var items []domain.Receivable
	for _, rec := range r.store.receivables {
		if rec.Status == domain.ReceivablePending && !rec.ChequeDate.After(onOrBefore) {
			items = append(items, rec)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ChequeDate.Before(items[j].ChequeDate) })
	return items, nil
}

func (r *ReceivableRepository) SaveReceivable(_ context.Context, receivable domain.Receivable) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, rec := range r.store.receivables {
		if rec.ChequeNumber == receivable.ChequeNumber && rec.BankName == receivable.BankName {
			return apperrors.NewDuplicateError(fmt.Sprintf("cheque %s of %s", receivable.ChequeNumber, receivable.BankName))
		}
		if rec.InternalRef == receivable.InternalRef {
			return apperrors.NewDuplicateError("internal reference " + receivable.InternalRef)
		}
	}
	r.store.receivables[receivable.ReceivableID] = receivable
	return nil
}

func (r *ReceivableRepository) UpdateReceivable(_ context.Context, receivable *domain.Receivable) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.receivables[receivable.ReceivableID]
	if !ok {
		return apperrors.NewNotFoundError("receivable " + receivable.ReceivableID)
	}
	if stored.Version != receivable.Version {
		return apperrors.NewConflictError("receivable " + receivable.ReceivableID + " was modified concurrently")
	}
	receivable.Version++
	r.store.receivables[receivable.ReceivableID] = *receivable
	return nil
}
