package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
)

// ReportingRepository implements portsrepo.ReportingRepository in memory.
type ReportingRepository struct {
	store *Store
}

var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

func (r *ReportingRepository) GetReceivableSummary(context.Context) ([]domain.PdcSummaryRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	byStatus := make(map[domain.ReceivableStatus]*domain.PdcSummaryRow)
	for _, rec := range r.store.receivables {
		row, ok := byStatus[rec.Status]
		if !ok {
			row = &domain.PdcSummaryRow{Status: rec.Status}
			byStatus[rec.Status] = row
		}
		row.Count++
		row.TotalAmount = row.TotalAmount.Add(rec.Amount)
	}
	rows := make([]domain.PdcSummaryRow, 0, len(byStatus))
	for _, row := range byStatus {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Status < rows[j].Status })
	return rows, nil
}

func (r *ReportingRepository) GetIssuedChequeSummary(context.Context) ([]domain.IssuedSummaryRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	byStatus := make(map[domain.ChequeStatus]*domain.IssuedSummaryRow)
	for _, c := range r.store.cheques {
		if c.Amount == nil {
			continue
		}
		row, ok := byStatus[c.Status]
		if !ok {
			row = &domain.IssuedSummaryRow{Status: c.Status}
			byStatus[c.Status] = row
		}
		row.Count++
		row.TotalAmount = row.TotalAmount.Add(*c.Amount)
	}
	rows := make([]domain.IssuedSummaryRow, 0, len(byStatus))
	for _, row := range byStatus {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Status < rows[j].Status })
	return rows, nil
}
