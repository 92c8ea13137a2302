package repositories

import (
	"context"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
)

// ReportingRepository defines operations for retrieving PDC exposure data
type ReportingRepository interface {
	// GetReceivableSummary counts and sums receivables grouped by status.
	GetReceivableSummary(ctx context.Context) ([]domain.PdcSummaryRow, error)

	// GetIssuedChequeSummary counts and sums outgoing cheques that carry an amount, grouped by status.
	GetIssuedChequeSummary(ctx context.Context) ([]domain.IssuedSummaryRow, error)
}
