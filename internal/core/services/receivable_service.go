package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/google/uuid"
)

const receivableImagePrefix = "incoming-cheques/"

type receivableService struct {
	BaseService
	txManager portsrepo.TransactionManager
	repo      portsrepo.ReceivableRepositoryFacade
	audit     portssvc.AuditTrailSvc
	images    ports.ImageStore
}

// ReceivableServiceOption is a functional option for configuring the receivable service
type ReceivableServiceOption func(*receivableService)

// WithImageStore enables AttachImage.
func WithImageStore(store ports.ImageStore) ReceivableServiceOption {
	return func(s *receivableService) {
		s.images = store
	}
}

// WithReceivableClock overrides the service clock.
func WithReceivableClock(clock func() time.Time) ReceivableServiceOption {
	return func(s *receivableService) {
		s.Clock = clock
	}
}

// NewReceivableService creates the incoming cheque lifecycle service.
func NewReceivableService(
	txManager portsrepo.TransactionManager,
	repo portsrepo.ReceivableRepositoryFacade,
	audit portssvc.AuditTrailSvc,
	options ...ReceivableServiceOption,
) portssvc.ReceivableSvcFacade {
	svc := &receivableService{
		txManager: txManager,
		repo:      repo,
		audit:     audit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReceivableSvcFacade = (*receivableService)(nil)

// NewInternalRef generates a receivable reference such as INC-20240301-9F86D081.
func NewInternalRef(now time.Time) string {
	return fmt.Sprintf("INC-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}

func (s *receivableService) RecordReceipt(ctx context.Context, req dto.RecordReceivableRequest, actorID string) (*domain.Receivable, error) {
	customerID := strings.TrimSpace(req.CustomerID)
	chequeNumber := strings.TrimSpace(req.ChequeNumber)
	bankName := strings.TrimSpace(req.BankName)
	switch {
	case customerID == "":
		return nil, apperrors.NewValidationError("customerID is required")
	case chequeNumber == "" || bankName == "":
		return nil, apperrors.NewValidationError("cheque number and bank name are required")
	case !req.Amount.IsPositive():
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	case req.ChequeDate.IsZero():
		return nil, apperrors.NewValidationError("cheque date is required")
	}

	now := s.Now().UTC()
	receivedDate := domain.DateOnly(now)
	if req.ReceivedDate != nil {
		receivedDate = domain.DateOnly(*req.ReceivedDate)
	}
	receivable := domain.Receivable{
		ReceivableID:  uuid.NewString(),
		CustomerID:    customerID,
		InternalRef:   NewInternalRef(now),
		ChequeNumber:  chequeNumber,
		BankName:      bankName,
		BranchName:    nonEmpty(req.BranchName),
		Amount:        req.Amount,
		ChequeDate:    domain.DateOnly(req.ChequeDate),
		ReceivedDate:  receivedDate,
		Status:        domain.ReceivablePending,
		Remarks:       nonEmpty(req.Remarks),
		InvoiceNumber: nonEmpty(req.InvoiceNumber),
		AuditFields:   domain.NewAuditFields(actorID, now),
	}

	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindReceivableByChequeNumber(txCtx, chequeNumber, bankName)
		switch {
		case err == nil:
			return apperrors.NewDuplicateError(fmt.Sprintf("cheque %s of %s was already received as %s", chequeNumber, bankName, existing.InternalRef))
		case !errors.Is(err, apperrors.ErrNotFound):
			return err
		}
		if err := s.repo.SaveReceivable(txCtx, receivable); err != nil {
			return err
		}
		return s.audit.Record(txCtx, domain.EntityTypeReceivable, receivable.ReceivableID, domain.AuditCreate, actorID,
			"", fmt.Sprintf("status=%s amount=%s ref=%s", receivable.Status, receivable.Amount.StringFixed(2), receivable.InternalRef))
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to record receivable", slog.String("cheque_number", chequeNumber))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Receivable recorded",
		slog.String("receivable_id", receivable.ReceivableID),
		slog.String("internal_ref", receivable.InternalRef))
	return &receivable, nil
}

func (s *receivableService) GetReceivable(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	receivable, err := s.repo.FindReceivableByID(ctx, receivableID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find receivable", slog.String("receivable_id", receivableID))
		}
		return nil, err
	}
	return receivable, nil
}

func (s *receivableService) ListReceivables(ctx context.Context, params dto.ListReceivablesParams) ([]domain.Receivable, error) {
	filter := portsrepo.ReceivableFilter{
		CustomerID: params.CustomerID,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if params.Status != "" {
		status, err := domain.ParseReceivableStatus(params.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = status
	}
	items, err := s.repo.ListReceivables(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receivables")
		return nil, err
	}
	if items == nil {
		return []domain.Receivable{}, nil
	}
	return items, nil
}

func (s *receivableService) SetReceivableStatus(ctx context.Context, receivableID string, status domain.ReceivableStatus, remarks *string, actorID string) (*domain.Receivable, error) {
	if _, err := domain.ParseReceivableStatus(string(status)); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var receivable *domain.Receivable
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		receivable, err = s.repo.FindReceivableByID(txCtx, receivableID)
		if err != nil {
			return err
		}
		old := receivable.Status
		receivable.Status = status
		if r := nonEmpty(remarks); r != nil {
			receivable.Remarks = r
		}
		receivable.Touch(actorID, s.Now().UTC())
		if err := s.repo.UpdateReceivable(txCtx, receivable); err != nil {
			return err
		}
		return s.audit.Record(txCtx, domain.EntityTypeReceivable, receivableID, domain.AuditStatusChange, actorID, string(old), string(status))
	})
	if err != nil {
		return nil, err
	}
	return receivable, nil
}

func (s *receivableService) AttachImage(ctx context.Context, receivableID, filename, contentType string, content io.Reader, actorID string) (*domain.Receivable, error) {
	if s.images == nil {
		return nil, apperrors.NewAppError(500, "image storage is not configured", nil)
	}
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if base == "" || base == "." || base == "/" {
		return nil, apperrors.NewValidationError("a file name is required")
	}
	if _, err := s.GetReceivable(ctx, receivableID); err != nil {
		return nil, err
	}

	key, err := s.images.Put(ctx, receivableImagePrefix+uuid.NewString()+"_"+base, contentType, content)
	if err != nil {
		s.LogError(ctx, err, "Failed to store cheque image", slog.String("receivable_id", receivableID))
		return nil, err
	}

	var receivable *domain.Receivable
	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		receivable, err = s.repo.FindReceivableByID(txCtx, receivableID)
		if err != nil {
			return err
		}
		old := ""
		if receivable.ImagePath != nil {
			old = *receivable.ImagePath
		}
		receivable.ImagePath = &key
		receivable.Touch(actorID, s.Now().UTC())
		if err := s.repo.UpdateReceivable(txCtx, receivable); err != nil {
			return err
		}
		return s.audit.Record(txCtx, domain.EntityTypeReceivable, receivableID, domain.AuditImageAttached, actorID, old, key)
	})
	if err != nil {
		s.LogWarn(ctx, "Stored cheque image is not linked to a receivable", slog.String("key", key), slog.String("error", err.Error()))
		return nil, err
	}
	return receivable, nil
}
