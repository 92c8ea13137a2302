package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

type chequeService struct {
	BaseService
	txManager        portsrepo.TransactionManager
	chequeRepo       portsrepo.ChequeRepositoryFacade
	bookRepo         portsrepo.ChequeBookRepositoryFacade
	audit            portssvc.AuditTrailSvc
	requests         portsrepo.ApprovalRequestReader
	allowDirectIssue bool
}

// ChequeServiceOption is a functional option for configuring the cheque service
type ChequeServiceOption func(*chequeService)

// WithDirectIssue lets IssueCheque request an APPROVED or PRINTED workflow status,
// bypassing the approval engine.
func WithDirectIssue(allowed bool) ChequeServiceOption {
	return func(s *chequeService) {
		s.allowDirectIssue = allowed
	}
}

// WithApprovalRequests lets IssueCheque refuse to re-draft a leaf that has a pending approval request.
func WithApprovalRequests(reader portsrepo.ApprovalRequestReader) ChequeServiceOption {
	return func(s *chequeService) {
		s.requests = reader
	}
}

// WithChequeClock overrides the service clock.
func WithChequeClock(clock func() time.Time) ChequeServiceOption {
	return func(s *chequeService) {
		s.Clock = clock
	}
}

// NewChequeService creates the outgoing cheque lifecycle service.
func NewChequeService(
	txManager portsrepo.TransactionManager,
	chequeRepo portsrepo.ChequeRepositoryFacade,
	bookRepo portsrepo.ChequeBookRepositoryFacade,
	audit portssvc.AuditTrailSvc,
	options ...ChequeServiceOption,
) portssvc.ChequeSvcFacade {
	svc := &chequeService{
		txManager:  txManager,
		chequeRepo: chequeRepo,
		bookRepo:   bookRepo,
		audit:      audit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var (
	_ portssvc.ChequeSvcFacade       = (*chequeService)(nil)
	_ ports.ApprovalRequestValidator = (*chequeService)(nil)
)

// chequeState renders the fields audit entries compare.
func chequeState(c *domain.Cheque) string {
	var b strings.Builder
	fmt.Fprintf(&b, "status=%s workflow=%s", c.Status, c.WorkflowStatus)
	if c.Amount != nil {
		fmt.Fprintf(&b, " amount=%s", c.Amount.StringFixed(2))
	}
	if c.PayeeName != nil || c.VendorID != nil {
		fmt.Fprintf(&b, " payee=%s", c.DisplayPayee())
	}
	if c.ChequeDate != nil {
		fmt.Fprintf(&b, " date=%s", c.ChequeDate.Format(time.DateOnly))
	}
	return b.String()
}

func nonEmpty(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

func (s *chequeService) GetCheque(ctx context.Context, chequeID string) (*domain.Cheque, error) {
	cheque, err := s.chequeRepo.FindChequeByID(ctx, chequeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cheque", slog.String("cheque_id", chequeID))
		}
		return nil, err
	}
	return cheque, nil
}

func (s *chequeService) IssueCheque(ctx context.Context, req dto.IssueChequeRequest, actorID string) (*domain.Cheque, error) {
	payee, vendor := nonEmpty(req.PayeeName), nonEmpty(req.VendorID)
	switch {
	case req.ChequeID == "" && req.ChequeBookID == "":
		return nil, apperrors.NewValidationError("chequeID or chequeBookID is required")
	case payee == nil && vendor == nil:
		return nil, apperrors.NewValidationError("payee name or vendor is required")
	case !req.Amount.IsPositive():
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	case req.ChequeDate.IsZero():
		return nil, apperrors.NewValidationError("cheque date is required")
	}

	workflow := domain.WorkflowDraft
	if req.WorkflowStatus != nil {
		workflow = *req.WorkflowStatus
	}
	switch workflow {
	case domain.WorkflowDraft:
	case domain.WorkflowApproved, domain.WorkflowPrinted:
		if !s.allowDirectIssue {
			return nil, apperrors.NewForbiddenError("cheques must go through approval before they are issued")
		}
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("workflow status %s cannot be requested when issuing", workflow))
	}

	var cheque *domain.Cheque
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		cheque, err = s.resolveLeaf(txCtx, req, actorID)
		if err != nil {
			return err
		}

		switch {
		case cheque.WorkflowStatus == domain.WorkflowApproved || cheque.WorkflowStatus == domain.WorkflowPrinted:
			return apperrors.NewConflictError(fmt.Sprintf("cheque %d is already %s", cheque.ChequeNumber, cheque.WorkflowStatus))
		case cheque.Status != domain.ChequeUnused:
			return apperrors.NewConflictError(fmt.Sprintf("cheque %d is %s", cheque.ChequeNumber, cheque.Status))
		}
		if err := s.ensureNoPendingRequest(txCtx, cheque); err != nil {
			return err
		}

		action := domain.AuditCreate
		if cheque.Amount != nil {
			action = domain.AuditUpdate
		}
		oldState := chequeState(cheque)

		amount := req.Amount
		chequeDate := domain.DateOnly(req.ChequeDate)
		cheque.Amount = &amount
		cheque.PayeeName = payee
		cheque.VendorID = vendor
		cheque.ChequeDate = &chequeDate
		if remarks := nonEmpty(req.Remarks); remarks != nil {
			cheque.Remarks = remarks
		}
		cheque.WorkflowStatus = workflow
		if workflow != domain.WorkflowDraft {
			cheque.Status = domain.ChequeIssued
		}
		cheque.Touch(actorID, s.Now().UTC())

		if err := s.chequeRepo.UpdateCheque(txCtx, cheque); err != nil {
			return err
		}
		return s.audit.Record(txCtx, domain.EntityTypeCheque, cheque.ChequeID, action, actorID, oldState, chequeState(cheque))
	})
	if err != nil {
		s.LogWarn(ctx, "Cheque issue failed",
			slog.String("cheque_id", req.ChequeID),
			slog.String("cheque_book_id", req.ChequeBookID),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Cheque drafted",
		slog.String("cheque_id", cheque.ChequeID),
		slog.Int64("cheque_number", cheque.ChequeNumber),
		slog.String("workflow_status", string(cheque.WorkflowStatus)))
	return cheque, nil
}

// ensureNoPendingRequest keeps a leaf's draft frozen while a request for it awaits review.
func (s *chequeService) ensureNoPendingRequest(ctx context.Context, cheque *domain.Cheque) error {
	if s.requests == nil {
		return nil
	}
	pending, err := s.requests.ListPendingApprovalRequestsForEntity(ctx, domain.EntityTypeCheque, cheque.ChequeID)
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("cheque %d has a pending %s request %s",
			cheque.ChequeNumber, pending[0].ActionType, pending[0].RequestID))
	}
	return nil
}

// resolveLeaf finds the cheque named by the request, or takes the lowest unused leaf of the
// requested book and moves the book cursor past it.
func (s *chequeService) resolveLeaf(ctx context.Context, req dto.IssueChequeRequest, actorID string) (*domain.Cheque, error) {
	if req.ChequeID != "" {
		cheque, err := s.chequeRepo.FindChequeByID(ctx, req.ChequeID)
		if err != nil {
			return nil, err
		}
		if req.ChequeBookID != "" && req.ChequeBookID != cheque.ChequeBookID {
			return nil, apperrors.NewValidationError(fmt.Sprintf("cheque %s does not belong to cheque book %s", req.ChequeID, req.ChequeBookID))
		}
		return cheque, nil
	}

	book, err := s.bookRepo.FindChequeBookByID(ctx, req.ChequeBookID)
	if err != nil {
		return nil, err
	}
	cheque, err := nextUnusedLeaf(ctx, s.chequeRepo, book)
	if err != nil {
		return nil, err
	}
	if book.AdvanceCursor(cheque.ChequeNumber) {
		book.Touch(actorID, s.Now().UTC())
		if err := s.bookRepo.UpdateChequeBook(ctx, book); err != nil {
			return nil, err
		}
	}
	return cheque, nil
}

func (s *chequeService) SetChequeStatus(ctx context.Context, chequeID string, status domain.ChequeStatus, remarks *string, actorID string) (*domain.Cheque, error) {
	if _, err := domain.ParseChequeStatus(string(status)); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var cheque *domain.Cheque
	var oldStatus domain.ChequeStatus
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		cheque, err = s.chequeRepo.FindChequeByID(txCtx, chequeID)
		if err != nil {
			return err
		}
		if !domain.IsLegalCombination(status, cheque.WorkflowStatus) {
			return apperrors.NewValidationError(fmt.Sprintf("status %s is not allowed while workflow is %s", status, cheque.WorkflowStatus))
		}

		oldStatus = cheque.Status
		cheque.Status = status
		if r := nonEmpty(remarks); r != nil {
			cheque.Remarks = r
		}
		cheque.Touch(actorID, s.Now().UTC())
		if err := s.chequeRepo.UpdateCheque(txCtx, cheque); err != nil {
			return err
		}
		return s.audit.Record(txCtx, domain.EntityTypeCheque, chequeID, domain.AuditStatusChange, actorID, string(oldStatus), string(status))
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Cheque status changed",
		slog.String("cheque_id", chequeID),
		slog.String("from", string(oldStatus)),
		slog.String("to", string(status)))
	return cheque, nil
}

func (s *chequeService) MarkPrinted(ctx context.Context, chequeID string, actorID string) (*domain.Cheque, error) {
	var cheque *domain.Cheque
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		cheque, err = s.chequeRepo.FindChequeByID(txCtx, chequeID)
		if err != nil {
			return err
		}
		if cheque.WorkflowStatus != domain.WorkflowApproved {
			return apperrors.NewConflictError(fmt.Sprintf("only approved cheques can be printed, cheque %d is %s", cheque.ChequeNumber, cheque.WorkflowStatus))
		}
		oldState := chequeState(cheque)
		switch cheque.Status {
		case domain.ChequeIssued:
			cheque.Status = domain.ChequePrinted
		case domain.ChequeDue:
			// already presented for payment; only the workflow records the print
		default:
			return apperrors.NewConflictError(fmt.Sprintf("cheque %d is %s", cheque.ChequeNumber, cheque.Status))
		}
		cheque.WorkflowStatus = domain.WorkflowPrinted
		cheque.Touch(actorID, s.Now().UTC())
		if err := s.chequeRepo.UpdateCheque(txCtx, cheque); err != nil {
			return err
		}
		return s.audit.Record(txCtx, domain.EntityTypeCheque, chequeID, domain.AuditPrinted, actorID, oldState, chequeState(cheque))
	})
	if err != nil {
		return nil, err
	}
	return cheque, nil
}

// ValidateRequest vets a Cheque approval request before the engine stores it. An ISSUE
// request without an amount inherits the drafted amount; any other amount must match it.
func (s *chequeService) ValidateRequest(ctx context.Context, request *domain.ApprovalRequest) error {
	cheque, err := s.chequeRepo.FindChequeByID(ctx, request.EntityID)
	if err != nil {
		return err
	}
	switch strings.ToUpper(request.ActionType) {
	case domain.ActionIssue:
		if cheque.WorkflowStatus != domain.WorkflowDraft || cheque.Status != domain.ChequeUnused || cheque.Amount == nil {
			return apperrors.NewConflictError(fmt.Sprintf("cheque %d must be a drafted, unused leaf to be submitted for issue", cheque.ChequeNumber))
		}
		if request.Amount.IsZero() {
			request.Amount = *cheque.Amount
		} else if !request.Amount.Equal(*cheque.Amount) {
			return apperrors.NewValidationError(fmt.Sprintf("amount %s does not match the drafted amount %s of cheque %d",
				request.Amount.StringFixed(2), cheque.Amount.StringFixed(2), cheque.ChequeNumber))
		}
	case domain.ActionVoid, domain.ActionCancel:
		if cheque.Status.IsTerminal() {
			return apperrors.NewConflictError(fmt.Sprintf("cheque %d is already %s", cheque.ChequeNumber, cheque.Status))
		}
		if request.Amount.IsZero() && cheque.Amount != nil {
			request.Amount = *cheque.Amount
		}
	default:
		return apperrors.NewValidationError(fmt.Sprintf("action %s is not supported for cheques", request.ActionType))
	}
	return nil
}

// ApplyApproved applies a finished Cheque request. It runs inside the engine's transaction
// and leaves auditing to the engine.
func (s *chequeService) ApplyApproved(ctx context.Context, request domain.ApprovalRequest) error {
	cheque, err := s.chequeRepo.FindChequeByID(ctx, request.EntityID)
	if err != nil {
		return err
	}

	switch strings.ToUpper(request.ActionType) {
	case domain.ActionIssue:
		if cheque.WorkflowStatus != domain.WorkflowDraft || cheque.Status != domain.ChequeUnused {
			return apperrors.NewConflictError(fmt.Sprintf("cheque %d changed while awaiting approval (%s/%s)", cheque.ChequeNumber, cheque.Status, cheque.WorkflowStatus))
		}
		if cheque.Amount == nil || !cheque.Amount.Equal(request.Amount) {
			return apperrors.NewConflictError(fmt.Sprintf("cheque %d amount differs from the approved amount %s", cheque.ChequeNumber, request.Amount.StringFixed(2)))
		}
		cheque.WorkflowStatus = domain.WorkflowApproved
		cheque.Status = domain.ChequeIssued
	case domain.ActionVoid:
		cheque.Status = domain.ChequeVoid
		cheque.Remarks = payloadRemarks(request.Payload, cheque.Remarks)
	case domain.ActionCancel:
		cheque.Status = domain.ChequeCancelled
		cheque.Remarks = payloadRemarks(request.Payload, cheque.Remarks)
	default:
		return apperrors.NewValidationError(fmt.Sprintf("action %s is not supported for cheques", request.ActionType))
	}

	cheque.Touch(lastApprover(request), s.Now().UTC())
	return s.chequeRepo.UpdateCheque(ctx, cheque)
}

// ApplyRejected reverts the target of a rejected Cheque request. A rejected ISSUE returns
// the leaf to the available pool unless it already left the draft state; rejected VOID and
// CANCEL leave the cheque untouched.
func (s *chequeService) ApplyRejected(ctx context.Context, request domain.ApprovalRequest) error {
	if !strings.EqualFold(request.ActionType, domain.ActionIssue) {
		return nil
	}
	cheque, err := s.chequeRepo.FindChequeByID(ctx, request.EntityID)
	if err != nil {
		return err
	}
	if cheque.WorkflowStatus != domain.WorkflowDraft || cheque.Status != domain.ChequeUnused {
		s.LogInfo(ctx, "Rejected request left the cheque as is",
			slog.String("request_id", request.RequestID),
			slog.String("cheque_id", cheque.ChequeID),
			slog.String("status", string(cheque.Status)),
			slog.String("workflow_status", string(cheque.WorkflowStatus)))
		return nil
	}
	cheque.WorkflowStatus = domain.WorkflowRejected
	cheque.Status = domain.ChequeUnused
	cheque.ClearIssueDetails()
	cheque.LastUpdatedAt = s.Now().UTC()
	if request.RejectedBy != nil {
		cheque.LastUpdatedBy = *request.RejectedBy
	}
	return s.chequeRepo.UpdateCheque(ctx, cheque)
}

func payloadRemarks(payload string, fallback *string) *string {
	if payload == "" {
		return fallback
	}
	if r := gjson.Get(payload, "remarks"); r.Exists() && strings.TrimSpace(r.String()) != "" {
		v := strings.TrimSpace(r.String())
		return &v
	}
	return fallback
}

func lastApprover(r domain.ApprovalRequest) string {
	for _, p := range []*string{r.AuthorizedBy, r.ApprovedBy, r.CheckedBy} {
		if p != nil {
			return *p
		}
	}
	return r.RequestedBy
}

// amountFromPayload reads a numeric "amount" member of a JSON payload.
func amountFromPayload(payload string) (decimal.Decimal, bool) {
	r := gjson.Get(payload, "amount")
	if !r.Exists() || (r.Type != gjson.Number && r.Type != gjson.String) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(r.String()))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
