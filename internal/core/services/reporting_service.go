package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// receivables still expected to turn into cash
var openReceivableStatuses = map[domain.ReceivableStatus]bool{
	domain.ReceivablePending:   true,
	domain.ReceivableDue:       true,
	domain.ReceivableDeposited: true,
}

// issued cheques not yet debited
var openChequeStatuses = map[domain.ChequeStatus]bool{
	domain.ChequeIssued:  true,
	domain.ChequePrinted: true,
	domain.ChequeDue:     true,
}

// GetPdcExposure summarizes receivables and issued cheques by status.
func (s *reportingService) GetPdcExposure(ctx context.Context) (*dto.PdcExposureResponse, error) {
	receivables, err := s.reportingRepo.GetReceivableSummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve receivable summary")
		return nil, fmt.Errorf("failed to retrieve receivable summary: %w", err)
	}
	cheques, err := s.reportingRepo.GetIssuedChequeSummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve issued cheque summary")
		return nil, fmt.Errorf("failed to retrieve issued cheque summary: %w", err)
	}

	resp := &dto.PdcExposureResponse{
		AsOf:             s.Now().UTC(),
		Receivables:      receivables,
		IssuedCheques:    cheques,
		TotalReceivable:  decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}
	if resp.Receivables == nil {
		resp.Receivables = []domain.PdcSummaryRow{}
	}
	if resp.IssuedCheques == nil {
		resp.IssuedCheques = []domain.IssuedSummaryRow{}
	}
	for _, row := range receivables {
		if openReceivableStatuses[row.Status] {
			resp.TotalReceivable = resp.TotalReceivable.Add(row.TotalAmount)
		}
	}
	for _, row := range cheques {
		if openChequeStatuses[row.Status] {
			resp.TotalOutstanding = resp.TotalOutstanding.Add(row.TotalAmount)
		}
	}

	s.LogDebug(ctx, "PDC exposure report generated",
		slog.String("total_receivable", resp.TotalReceivable.String()),
		slog.String("total_outstanding", resp.TotalOutstanding.String()))
	return resp, nil
}
