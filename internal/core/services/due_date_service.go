package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
)

// chequeSweepStatuses are the outgoing cheque states that become DUE on their date.
var chequeSweepStatuses = []domain.ChequeStatus{domain.ChequeIssued, domain.ChequePrinted}

type dueDateService struct {
	BaseService
	txManager      portsrepo.TransactionManager
	chequeRepo     portsrepo.ChequeRepositoryFacade
	receivableRepo portsrepo.ReceivableRepositoryFacade
	audit          portssvc.AuditTrailSvc
	notifier       ports.Notifier
	location       *time.Location
}

// DueDateServiceOption is a functional option for configuring the due date service
type DueDateServiceOption func(*dueDateService)

// WithSweepNotifier publishes a PDC_DUE notification per transitioned record.
func WithSweepNotifier(notifier ports.Notifier) DueDateServiceOption {
	return func(s *dueDateService) {
		s.notifier = notifier
	}
}

// WithSweepLocation sets the time zone that decides what "today" is.
func WithSweepLocation(loc *time.Location) DueDateServiceOption {
	return func(s *dueDateService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithSweepClock overrides the service clock.
func WithSweepClock(clock func() time.Time) DueDateServiceOption {
	return func(s *dueDateService) {
		s.Clock = clock
	}
}

// NewDueDateService creates the date-driven PDC transition service.
func NewDueDateService(
	txManager portsrepo.TransactionManager,
	chequeRepo portsrepo.ChequeRepositoryFacade,
	receivableRepo portsrepo.ReceivableRepositoryFacade,
	audit portssvc.AuditTrailSvc,
	options ...DueDateServiceOption,
) portssvc.DueDateSvc {
	svc := &dueDateService{
		txManager:      txManager,
		chequeRepo:     chequeRepo,
		receivableRepo: receivableRepo,
		audit:          audit,
		location:       time.UTC,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DueDateSvc = (*dueDateService)(nil)

func (s *dueDateService) RunDueDateSweep(ctx context.Context) (int, error) {
	today := domain.DateOnly(s.Now().In(s.location))
	var listErrs []error
	var due []domain.Notification

	cheques, err := s.chequeRepo.ListDueCheques(ctx, chequeSweepStatuses, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to list due cheques")
		listErrs = append(listErrs, fmt.Errorf("listing due cheques: %w", err))
	}
	for i := range cheques {
		cheque := cheques[i]
		if err := s.chequeDue(ctx, &cheque); err != nil {
			s.LogWarn(ctx, "Skipping cheque in due date sweep",
				slog.String("cheque_id", cheque.ChequeID),
				slog.String("error", err.Error()))
			continue
		}
		due = append(due, domain.Notification{
			Type:       domain.NotificationPdcDue,
			EntityType: domain.EntityTypeCheque,
			EntityID:   cheque.ChequeID,
			Title:      "Cheque due",
			Message:    fmt.Sprintf("Cheque %d to %s is due today", cheque.ChequeNumber, cheque.DisplayPayee()),
		})
	}

	receivables, err := s.receivableRepo.ListDueReceivables(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to list due receivables")
		listErrs = append(listErrs, fmt.Errorf("listing due receivables: %w", err))
	}
	for i := range receivables {
		receivable := receivables[i]
		if err := s.receivableDue(ctx, &receivable); err != nil {
			s.LogWarn(ctx, "Skipping receivable in due date sweep",
				slog.String("receivable_id", receivable.ReceivableID),
				slog.String("error", err.Error()))
			continue
		}
		due = append(due, domain.Notification{
			Type:       domain.NotificationPdcDue,
			EntityType: domain.EntityTypeReceivable,
			EntityID:   receivable.ReceivableID,
			Title:      "Cheque ready for deposit",
			Message:    fmt.Sprintf("Cheque %s (%s) for %s is due for deposit", receivable.ChequeNumber, receivable.BankName, receivable.Amount.StringFixed(2)),
		})
	}

	if s.notifier != nil {
		now := s.Now().UTC()
		for _, n := range due {
			n.CreatedAt = now
			s.notifier.Notify(ctx, n)
		}
	}

	s.LogInfo(ctx, "Due date sweep finished",
		slog.String("as_of", today.Format(time.DateOnly)),
		slog.Int("transitioned", len(due)),
		slog.Int("candidates", len(cheques)+len(receivables)))
	return len(due), errors.Join(listErrs...)
}

// chequeDue commits one cheque transition with its audit entry.
func (s *dueDateService) chequeDue(ctx context.Context, cheque *domain.Cheque) error {
	return s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		old := cheque.Status
		if !domain.IsLegalCombination(domain.ChequeDue, cheque.WorkflowStatus) {
			return fmt.Errorf("cheque %d cannot be DUE while workflow is %s", cheque.ChequeNumber, cheque.WorkflowStatus)
		}
		cheque.Status = domain.ChequeDue
		cheque.Touch(domain.SystemActor, s.Now().UTC())
		if err := s.chequeRepo.UpdateCheque(txCtx, cheque); err != nil {
			return err
		}
		return s.audit.Record(txCtx, domain.EntityTypeCheque, cheque.ChequeID, domain.AuditDueDateReached, domain.SystemActor, string(old), string(domain.ChequeDue))
	})
}

// receivableDue commits one receivable transition with its audit entry.
func (s *dueDateService) receivableDue(ctx context.Context, receivable *domain.Receivable) error {
	return s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		old := receivable.Status
		receivable.Status = domain.ReceivableDue
		receivable.Touch(domain.SystemActor, s.Now().UTC())
		if err := s.receivableRepo.UpdateReceivable(txCtx, receivable); err != nil {
			return err
		}
		return s.audit.Record(txCtx, domain.EntityTypeReceivable, receivable.ReceivableID, domain.AuditDueDateReached, domain.SystemActor, string(old), string(domain.ReceivableDue))
	})
}
