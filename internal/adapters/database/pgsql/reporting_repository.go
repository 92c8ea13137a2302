package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetReceivableSummary groups incoming cheques by status
func (r *reportingRepository) GetReceivableSummary(ctx context.Context) ([]domain.PdcSummaryRow, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM incoming_cheques
		GROUP BY status
		ORDER BY status`

	rows, err := r.db(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying receivable summary: %w", err)
	}
	defer rows.Close()

	result := []domain.PdcSummaryRow{}
	for rows.Next() {
		var row domain.PdcSummaryRow
		var status string
		if err := rows.Scan(&status, &row.Count, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("error scanning receivable summary row: %w", err)
		}
		row.Status = domain.ReceivableStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating receivable summary rows: %w", err)
	}
	return result, nil
}

// GetIssuedChequeSummary groups drafted or issued outgoing cheques by status
func (r *reportingRepository) GetIssuedChequeSummary(ctx context.Context) ([]domain.IssuedSummaryRow, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM cheques
		WHERE amount IS NOT NULL
		GROUP BY status
		ORDER BY status`

	rows, err := r.db(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying issued cheque summary: %w", err)
	}
	defer rows.Close()

	result := []domain.IssuedSummaryRow{}
	for rows.Next() {
		var row domain.IssuedSummaryRow
		var status string
		if err := rows.Scan(&status, &row.Count, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("error scanning issued cheque summary row: %w", err)
		}
		row.Status = domain.ChequeStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating issued cheque summary rows: %w", err)
	}
	return result, nil
}
