package services

import (
	"context"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	"github.com/SscSPs/cheque_management_app/internal/dto"
)

// ChequeReaderSvc defines read operations for outgoing cheques
type ChequeReaderSvc interface {
	GetCheque(ctx context.Context, chequeID string) (*domain.Cheque, error)
}

// ChequeLifecycleSvc drives the status and workflow state of outgoing cheques.
type ChequeLifecycleSvc interface {
	// IssueCheque drafts a cheque (by id, or the next free leaf of a book).
	IssueCheque(ctx context.Context, req dto.IssueChequeRequest, actorID string) (*domain.Cheque, error)

	// SetChequeStatus sets any enumerated status as long as the result is a legal
	// status and workflow combination.
	SetChequeStatus(ctx context.Context, chequeID string, status domain.ChequeStatus, remarks *string, actorID string) (*domain.Cheque, error)

	// MarkPrinted records that an approved cheque was printed.
	MarkPrinted(ctx context.Context, chequeID string, actorID string) (*domain.Cheque, error)
}

// ChequeSvcFacade combines all cheque service interfaces. It is also the approval
// capability for the Cheque entity type.
type ChequeSvcFacade interface {
	ChequeReaderSvc
	ChequeLifecycleSvc
	ports.ApprovalHandler
}
