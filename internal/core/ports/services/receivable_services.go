package services

import (
	"context"
	"io"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/dto"
)

// ReceivableReaderSvc defines read operations for incoming cheques
type ReceivableReaderSvc interface {
	GetReceivable(ctx context.Context, receivableID string) (*domain.Receivable, error)
	ListReceivables(ctx context.Context, params dto.ListReceivablesParams) ([]domain.Receivable, error)
}

// ReceivableLifecycleSvc records and advances incoming cheques.
type ReceivableLifecycleSvc interface {
	// RecordReceipt creates a PENDING receivable. A second receipt of the same
	// (chequeNumber, bankName) is a conflict.
	RecordReceipt(ctx context.Context, req dto.RecordReceivableRequest, actorID string) (*domain.Receivable, error)

	SetReceivableStatus(ctx context.Context, receivableID string, status domain.ReceivableStatus, remarks *string, actorID string) (*domain.Receivable, error)

	// AttachImage stores a scanned copy of the cheque and links it to the receivable.
	AttachImage(ctx context.Context, receivableID, filename, contentType string, content io.Reader, actorID string) (*domain.Receivable, error)
}

// ReceivableSvcFacade combines all receivable service interfaces
type ReceivableSvcFacade interface {
	ReceivableReaderSvc
	ReceivableLifecycleSvc
}
