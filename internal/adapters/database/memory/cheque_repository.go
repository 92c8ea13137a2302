package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
)

// ChequeRepository implements portsrepo.ChequeRepositoryFacade in memory.
type ChequeRepository struct {
	store *Store
}

var _ portsrepo.ChequeRepositoryFacade = (*ChequeRepository)(nil)

func (r *ChequeRepository) FindChequeByID(_ context.Context, chequeID string) (*domain.Cheque, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.cheques[chequeID]
	if !ok {
		return nil, apperrors.NewNotFoundError("cheque " + chequeID)
	}
	return &c, nil
}

func (r *ChequeRepository) ListChequesByBook(_ context.Context, chequeBookID string) ([]domain.Cheque, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var cheques []domain.Cheque
	for _, c := range r.store.cheques {
		if c.ChequeBookID == chequeBookID {
			cheques = append(cheques, c)
		}
	}
	sort.Slice(cheques, func(i, j int) bool { return cheques[i].ChequeNumber < cheques[j].ChequeNumber })
	return cheques, nil
}

func (r *ChequeRepository) FindLowestUnusedCheque(ctx context.Context, chequeBookID string) (*domain.Cheque, error) {
	cheques, _ := r.ListChequesByBook(ctx, chequeBookID)
	for i := range cheques {
		if cheques[i].Status == domain.ChequeUnused && cheques[i].Amount == nil {
			return &cheques[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("unused cheque in book " + chequeBookID)
}

func (r *ChequeRepository) ListDueCheques(_ context.Context, statuses []domain.ChequeStatus, onOrBefore time.Time) ([]domain.Cheque, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var cheques []domain.Cheque
	for _, c := range r.store.cheques {
		if c.ChequeDate != nil && !c.ChequeDate.After(onOrBefore) && slices.Contains(statuses, c.Status) {
			cheques = append(cheques, c)
		}
	}
	sort.Slice(cheques, func(i, j int) bool { return cheques[i].ChequeDate.Before(*cheques[j].ChequeDate) })
	return cheques, nil
}

func (r *ChequeRepository) SaveCheques(_ context.Context, cheques []domain.Cheque) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	type leafKey struct {
		book   string
		number int64
	}
	taken := make(map[leafKey]bool)
	for _, c := range r.store.cheques {
		taken[leafKey{c.ChequeBookID, c.ChequeNumber}] = true
	}
	for _, c := range cheques {
		k := leafKey{c.ChequeBookID, c.ChequeNumber}
		if taken[k] {
			return apperrors.NewDuplicateError(fmt.Sprintf("cheque %d in book %s", c.ChequeNumber, c.ChequeBookID))
		}
		taken[k] = true
	}
	for _, c := range cheques {
		r.store.cheques[c.ChequeID] = c
	}
	return nil
}

func (r *ChequeRepository) UpdateCheque(_ context.Context, cheque *domain.Cheque) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.cheques[cheque.ChequeID]
	if !ok {
		return apperrors.NewNotFoundError("cheque " + cheque.ChequeID)
	}
	if stored.Version != cheque.Version {
		return apperrors.NewConflictError("cheque " + cheque.ChequeID + " was modified concurrently")
	}
	cheque.Version++
	r.store.cheques[cheque.ChequeID] = *cheque
	return nil
}
