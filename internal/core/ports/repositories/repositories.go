package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager      TransactionManager
	ChequeBookRepo ChequeBookRepositoryFacade
	ChequeRepo     ChequeRepositoryFacade
	ReceivableRepo ReceivableRepositoryFacade
	ApprovalRepo   ApprovalRequestRepositoryFacade
	AuditLogRepo   AuditLogRepository
	ReportingRepo  ReportingRepository
}
