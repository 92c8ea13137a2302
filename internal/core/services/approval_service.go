package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

type approvalService struct {
	BaseService
	txManager      portsrepo.TransactionManager
	repo           portsrepo.ApprovalRequestRepositoryFacade
	audit          portssvc.AuditTrailSvc
	notifier       ports.Notifier
	distinctActors bool

	mu       sync.RWMutex
	handlers map[string]ports.ApprovalHandler
}

// ApprovalServiceOption is a functional option for configuring the approval engine
type ApprovalServiceOption func(*approvalService)

// WithApprovalNotifier publishes workflow notifications after each committed step.
func WithApprovalNotifier(notifier ports.Notifier) ApprovalServiceOption {
	return func(s *approvalService) {
		s.notifier = notifier
	}
}

// WithDistinctApprovers toggles segregation of duties: when on, nobody may act on a
// request they requested or already acted on. ADMIN overrides the stage role but is
// bound by this rule like everyone else.
func WithDistinctApprovers(enforce bool) ApprovalServiceOption {
	return func(s *approvalService) {
		s.distinctActors = enforce
	}
}

// WithApprovalHandler registers the capability applying outcomes for entityType.
func WithApprovalHandler(entityType string, handler ports.ApprovalHandler) ApprovalServiceOption {
	return func(s *approvalService) {
		s.handlers[entityType] = handler
	}
}

// WithApprovalClock overrides the service clock.
func WithApprovalClock(clock func() time.Time) ApprovalServiceOption {
	return func(s *approvalService) {
		s.Clock = clock
	}
}

// NewApprovalService creates the approval workflow engine. Segregation of duties is on
// unless disabled with WithDistinctApprovers(false).
func NewApprovalService(
	txManager portsrepo.TransactionManager,
	repo portsrepo.ApprovalRequestRepositoryFacade,
	audit portssvc.AuditTrailSvc,
	options ...ApprovalServiceOption,
) portssvc.ApprovalSvcFacade {
	svc := &approvalService{
		txManager:      txManager,
		repo:           repo,
		audit:          audit,
		distinctActors: true,
		handlers:       make(map[string]ports.ApprovalHandler),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

func (s *approvalService) RegisterHandler(entityType string, handler ports.ApprovalHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[entityType] = handler
}

func (s *approvalService) handlerFor(entityType string) ports.ApprovalHandler {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handlers[entityType]
}

func (s *approvalService) CreateRequest(ctx context.Context, req dto.CreateApprovalRequest, requesterID string) (*domain.ApprovalRequest, error) {
	entityType := strings.TrimSpace(req.EntityType)
	entityID := strings.TrimSpace(req.EntityID)
	actionType := strings.ToUpper(strings.TrimSpace(req.ActionType))
	switch {
	case entityType == "" || entityID == "" || actionType == "":
		return nil, apperrors.NewValidationError("entityType, entityID and actionType are required")
	case strings.TrimSpace(requesterID) == "":
		return nil, apperrors.NewValidationError("requester is required")
	case req.Amount.IsNegative():
		return nil, apperrors.NewValidationError("amount must not be negative")
	}

	payload := strings.TrimSpace(string(req.Payload))
	if payload == "null" {
		payload = ""
	}
	if payload != "" && !gjson.Valid(payload) {
		return nil, apperrors.NewValidationError("payload must be valid JSON")
	}

	amount := req.Amount
	if amount.IsZero() {
		if fromPayload, ok := amountFromPayload(payload); ok {
			if fromPayload.IsNegative() {
				return nil, apperrors.NewValidationError("amount must not be negative")
			}
			amount = fromPayload
		}
	}

	now := s.Now().UTC()
	request := domain.ApprovalRequest{
		RequestID:    uuid.NewString(),
		EntityType:   entityType,
		EntityID:     entityID,
		ActionType:   actionType,
		Amount:       amount,
		Payload:      payload,
		Status:       domain.RequestPending,
		CurrentStage: domain.StageChecker,
		RequestedBy:  requesterID,
		RequestedAt:  now,
		AuditFields:  domain.NewAuditFields(requesterID, now),
	}

	handler := s.handlerFor(entityType)
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		pending, err := s.repo.ListPendingApprovalRequestsForEntity(txCtx, entityType, entityID)
		if err != nil {
			return err
		}
		for _, open := range pending {
			if open.ActionType == request.ActionType {
				return apperrors.NewConflictError(fmt.Sprintf("%s %s already has a pending %s request %s",
					entityType, entityID, open.ActionType, open.RequestID))
			}
		}
		if validator, ok := handler.(ports.ApprovalRequestValidator); ok {
			if err := validator.ValidateRequest(txCtx, &request); err != nil {
				return err
			}
		}
		if err := s.repo.SaveApprovalRequest(txCtx, request); err != nil {
			return err
		}
		return s.audit.Record(txCtx, entityType, entityID, domain.AuditWorkflowInitiated, requesterID, "", string(domain.StageChecker))
	})
	if err != nil {
		s.LogWarn(ctx, "Approval request not created",
			slog.String("entity_type", entityType),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()))
		return nil, err
	}
	if handler == nil {
		s.LogWarn(ctx, "No approval handler registered, the outcome will not be applied", slog.String("entity_type", entityType))
	}

	s.LogInfo(ctx, "Approval request created",
		slog.String("request_id", request.RequestID),
		slog.String("action", request.ActionType),
		slog.String("amount", request.Amount.String()),
		slog.Bool("requires_finance", request.RequiresFinance()))
	s.notify(ctx, domain.NotificationApprovalPending, &request,
		"Approval required",
		fmt.Sprintf("%s %s %s awaits %s review", request.ActionType, request.EntityType, request.EntityID, request.CurrentStage))
	return &request, nil
}

func (s *approvalService) GetRequest(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	request, err := s.repo.FindApprovalRequestByID(ctx, requestID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find approval request", slog.String("request_id", requestID))
		}
		return nil, err
	}
	return request, nil
}

func (s *approvalService) ListPendingApprovals(ctx context.Context) ([]domain.ApprovalRequest, error) {
	return s.listPending(ctx, nil)
}

func (s *approvalService) ListPendingForRole(ctx context.Context, role domain.Role) ([]domain.ApprovalRequest, error) {
	stages := role.ActionableStages()
	if len(stages) == 0 {
		return []domain.ApprovalRequest{}, nil
	}
	return s.listPending(ctx, stages)
}

func (s *approvalService) listPending(ctx context.Context, stages []domain.Stage) ([]domain.ApprovalRequest, error) {
	requests, err := s.repo.ListPendingApprovalRequests(ctx, stages)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending approval requests")
		return nil, err
	}
	if requests == nil {
		return []domain.ApprovalRequest{}, nil
	}
	return requests, nil
}

func (s *approvalService) Approve(ctx context.Context, requestID string, actorID string, actorRole domain.Role) (*domain.ApprovalRequest, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, apperrors.NewValidationError("actor is required")
	}
	actor := domain.Actor{ID: actorID, Role: actorRole}

	var request *domain.ApprovalRequest
	var from, to domain.Stage
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		request, err = s.repo.FindApprovalRequestForUpdate(txCtx, requestID)
		if err != nil {
			return err
		}
		from, to, err = request.Advance(actor, s.distinctActors, s.Now().UTC())
		if err != nil {
			return err
		}

		action := domain.AuditWorkflowAdvanced
		if to == domain.StageApproved {
			action = domain.AuditWorkflowApproved
			if handler := s.handlerFor(request.EntityType); handler != nil {
				if err := handler.ApplyApproved(txCtx, *request); err != nil {
					return err
				}
			}
		}
		if err := s.repo.UpdateApprovalRequest(txCtx, request); err != nil {
			return err
		}
		return s.audit.Record(txCtx, request.EntityType, request.EntityID, action, actorID, string(from), string(to))
	})
	if err != nil {
		s.LogWarn(ctx, "Approval not applied",
			slog.String("request_id", requestID),
			slog.String("actor_id", actorID),
			slog.String("role", string(actorRole)),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Approval request advanced",
		slog.String("request_id", requestID),
		slog.String("from", string(from)),
		slog.String("to", string(to)))
	if to == domain.StageApproved {
		s.notify(ctx, domain.NotificationApprovalCompleted, request, "Request approved",
			fmt.Sprintf("%s %s %s was approved", request.ActionType, request.EntityType, request.EntityID))
	} else {
		s.notify(ctx, domain.NotificationApprovalPending, request, "Approval required",
			fmt.Sprintf("%s %s %s awaits %s review", request.ActionType, request.EntityType, request.EntityID, to))
	}
	return request, nil
}

func (s *approvalService) Reject(ctx context.Context, requestID string, actorID string) (*domain.ApprovalRequest, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, apperrors.NewValidationError("actor is required")
	}

	var request *domain.ApprovalRequest
	var from domain.Stage
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		request, err = s.repo.FindApprovalRequestForUpdate(txCtx, requestID)
		if err != nil {
			return err
		}
		from, err = request.Reject(actorID, s.Now().UTC())
		if err != nil {
			return err
		}
		if handler := s.handlerFor(request.EntityType); handler != nil {
			if err := handler.ApplyRejected(txCtx, *request); err != nil {
				return err
			}
		}
		if err := s.repo.UpdateApprovalRequest(txCtx, request); err != nil {
			return err
		}
		return s.audit.Record(txCtx, request.EntityType, request.EntityID, domain.AuditWorkflowRejected, actorID, string(from), string(domain.StageRejected))
	})
	if err != nil {
		s.LogWarn(ctx, "Rejection not applied",
			slog.String("request_id", requestID),
			slog.String("actor_id", actorID),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Approval request rejected", slog.String("request_id", requestID), slog.String("stage", string(from)))
	s.notify(ctx, domain.NotificationApprovalRejected, request, "Request rejected",
		fmt.Sprintf("%s %s %s was rejected at %s", request.ActionType, request.EntityType, request.EntityID, from))
	return request, nil
}

func (s *approvalService) notify(ctx context.Context, kind string, request *domain.ApprovalRequest, title, message string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, domain.Notification{
		Type:       kind,
		EntityType: request.EntityType,
		EntityID:   request.EntityID,
		Title:      title,
		Message:    message,
		CreatedAt:  s.Now().UTC(),
	})
}
