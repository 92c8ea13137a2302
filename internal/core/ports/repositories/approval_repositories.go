package repositories

import (
	"context"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
)

// ApprovalRequestReader defines read operations for approval requests
type ApprovalRequestReader interface {
	// FindApprovalRequestByID retrieves a request by its unique identifier.
	FindApprovalRequestByID(ctx context.Context, requestID string) (*domain.ApprovalRequest, error)

	// FindApprovalRequestForUpdate retrieves a request and locks it until the surrounding transaction ends.
	FindApprovalRequestForUpdate(ctx context.Context, requestID string) (*domain.ApprovalRequest, error)

	// ListPendingApprovalRequests returns PENDING requests oldest first. A non-empty stages
	// slice restricts the result to requests sitting in one of those stages.
	ListPendingApprovalRequests(ctx context.Context, stages []domain.Stage) ([]domain.ApprovalRequest, error)

	// ListPendingApprovalRequestsForEntity returns the PENDING requests raised against one entity.
	ListPendingApprovalRequestsForEntity(ctx context.Context, entityType, entityID string) ([]domain.ApprovalRequest, error)
}

// ApprovalRequestWriter defines write operations for approval requests
type ApprovalRequestWriter interface {
	// SaveApprovalRequest persists a new request.
	SaveApprovalRequest(ctx context.Context, request domain.ApprovalRequest) error

	// UpdateApprovalRequest writes the request under an optimistic version check and bumps request.Version.
	UpdateApprovalRequest(ctx context.Context, request *domain.ApprovalRequest) error
}

// ApprovalRequestRepositoryFacade combines all approval request repository interfaces
type ApprovalRequestRepositoryFacade interface {
	ApprovalRequestReader
	ApprovalRequestWriter
}

// ApprovalRequestRepositoryWithTx extends ApprovalRequestRepositoryFacade with transaction capabilities
type ApprovalRequestRepositoryWithTx interface {
	ApprovalRequestRepositoryFacade
	TransactionManager
}
