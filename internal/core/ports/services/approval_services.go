package services

import (
	"context"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	"github.com/SscSPs/cheque_management_app/internal/dto"
)

// ApprovalReaderSvc defines read operations for approval requests
type ApprovalReaderSvc interface {
	GetRequest(ctx context.Context, requestID string) (*domain.ApprovalRequest, error)

	// ListPendingApprovals returns every PENDING request, oldest first.
	ListPendingApprovals(ctx context.Context) ([]domain.ApprovalRequest, error)

	// ListPendingForRole returns the PENDING requests whose current stage role may act on.
	ListPendingForRole(ctx context.Context, role domain.Role) ([]domain.ApprovalRequest, error)
}

// ApprovalWorkflowSvc runs the staged approval state machine.
type ApprovalWorkflowSvc interface {
	CreateRequest(ctx context.Context, req dto.CreateApprovalRequest, requesterID string) (*domain.ApprovalRequest, error)
	Approve(ctx context.Context, requestID string, actorID string, actorRole domain.Role) (*domain.ApprovalRequest, error)
	Reject(ctx context.Context, requestID string, actorID string) (*domain.ApprovalRequest, error)

	// RegisterHandler installs the capability that applies outcomes for entityType.
	RegisterHandler(entityType string, handler ports.ApprovalHandler)
}

// ApprovalSvcFacade combines all approval service interfaces
type ApprovalSvcFacade interface {
	ApprovalReaderSvc
	ApprovalWorkflowSvc
}
