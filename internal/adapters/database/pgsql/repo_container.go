package pgsql

import (
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:      &BaseRepository{Pool: dbPool},
		ChequeBookRepo: newPgxChequeBookRepository(dbPool),
		ChequeRepo:     newPgxChequeRepository(dbPool),
		ReceivableRepo: newPgxReceivableRepository(dbPool),
		ApprovalRepo:   newPgxApprovalRequestRepository(dbPool),
		AuditLogRepo:   newPgxAuditLogRepository(dbPool),
		ReportingRepo:  newReportingRepository(dbPool),
	}
}
