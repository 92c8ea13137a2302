package services

import (
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/platform/config"
)

// Collaborators are the non-repository dependencies of the services. Nil fields disable
// the feature they back.
type Collaborators struct {
	Locker   ports.Locker
	Images   ports.ImageStore
	Notifier ports.Notifier
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, collab Collaborators) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit trail first since every other service writes to it
	container.Audit = NewAuditService(repos.AuditLogRepo)

	container.ChequeBook = NewChequeBookService(
		repos.TxManager,
		repos.ChequeBookRepo,
		repos.ChequeRepo,
		container.Audit,
		WithAllocationLocker(collab.Locker),
	)

	container.Cheque = NewChequeService(
		repos.TxManager,
		repos.ChequeRepo,
		repos.ChequeBookRepo,
		container.Audit,
		WithDirectIssue(cfg.AllowDirectIssue),
		WithApprovalRequests(repos.ApprovalRepo),
	)

	container.Receivable = NewReceivableService(
		repos.TxManager,
		repos.ReceivableRepo,
		container.Audit,
		WithImageStore(collab.Images),
	)

	container.Approval = NewApprovalService(
		repos.TxManager,
		repos.ApprovalRepo,
		container.Audit,
		WithDistinctApprovers(cfg.EnforceDistinctApprovers),
		WithApprovalNotifier(collab.Notifier),
		WithApprovalHandler(domain.EntityTypeCheque, container.Cheque),
	)

	container.DueDate = NewDueDateService(
		repos.TxManager,
		repos.ChequeRepo,
		repos.ReceivableRepo,
		container.Audit,
		WithSweepLocation(cfg.SweepLocation),
		WithSweepNotifier(collab.Notifier),
	)

	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
