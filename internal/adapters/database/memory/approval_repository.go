package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
)

// ApprovalRequestRepository implements portsrepo.ApprovalRequestRepositoryFacade in memory.
type ApprovalRequestRepository struct {
	store *Store
}

var _ portsrepo.ApprovalRequestRepositoryFacade = (*ApprovalRequestRepository)(nil)

func (r *ApprovalRequestRepository) FindApprovalRequestByID(_ context.Context, requestID string) (*domain.ApprovalRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	req, ok := r.store.requests[requestID]
	if !ok {
		return nil, apperrors.NewNotFoundError("approval request " + requestID)
	}
	return &req, nil
}

// FindApprovalRequestForUpdate needs no row lock: memory transactions are serialized.
func (r *ApprovalRequestRepository) FindApprovalRequestForUpdate(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	return r.FindApprovalRequestByID(ctx, requestID)
}

func (r *ApprovalRequestRepository) ListPendingApprovalRequests(_ context.Context, stages []domain.Stage) ([]domain.ApprovalRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var items []domain.ApprovalRequest
	for _, req := range r.store.requests {
		if req.Status != domain.RequestPending {
			continue
		}
		if len(stages) > 0 && !slices.Contains(stages, req.CurrentStage) {
			continue
		}
		items = append(items, req)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].RequestedAt.Before(items[j].RequestedAt) })
	return items, nil
}

func (r *ApprovalRequestRepository) ListPendingApprovalRequestsForEntity(_ context.Context, entityType, entityID string) ([]domain.ApprovalRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var items []domain.ApprovalRequest
	for _, req := range r.store.requests {
		if req.Status == domain.RequestPending && req.EntityType == entityType && req.EntityID == entityID {
			items = append(items, req)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].RequestedAt.Before(items[j].RequestedAt) })
	return items, nil
}

func (r *ApprovalRequestRepository) SaveApprovalRequest(_ context.Context, request domain.ApprovalRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.requests[request.RequestID]; exists {
		return apperrors.NewDuplicateError("approval request " + request.RequestID)
	}
	r.store.requests[request.RequestID] = request
	return nil
}

func (r *ApprovalRequestRepository) UpdateApprovalRequest(_ context.Context, request *domain.ApprovalRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.requests[request.RequestID]
	if !ok {
		return apperrors.NewNotFoundError("approval request " + request.RequestID)
	}
	if stored.Version != request.Version {
		return apperrors.NewConflictError("approval request " + request.RequestID + " was modified concurrently")
	}
	request.Version++
	r.store.requests[request.RequestID] = *request
	return nil
}
