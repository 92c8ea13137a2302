package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/SscSPs/cheque_management_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultAuditPageSize = 50

type auditService struct {
	BaseService
	repo portsrepo.AuditLogRepository
}

// NewAuditService creates the audit trail service.
func NewAuditService(repo portsrepo.AuditLogRepository) portssvc.AuditTrailSvc {
	return &auditService{repo: repo}
}

var _ portssvc.AuditTrailSvc = (*auditService)(nil)

func (s *auditService) Record(ctx context.Context, entityType, entityID, action, actorID, oldValue, newValue string) error {
	if strings.TrimSpace(actorID) == "" {
		return apperrors.NewValidationError("audit entry requires an actor")
	}
	entry := domain.AuditLogEntry{
		AuditLogID: uuid.NewString(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		ActorID:    actorID,
		OldValue:   oldValue,
		NewValue:   newValue,
		Timestamp:  s.Now().UTC(),
	}
	if err := s.repo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to write audit entry",
			slog.String("entity_type", entityType),
			slog.String("entity_id", entityID),
			slog.String("action", action))
		return err
	}
	return nil
}

func (s *auditService) ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) (*dto.ListAuditLogsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	filter := portsrepo.AuditLogFilter{
		EntityType: params.EntityType,
		EntityID:   params.EntityID,
		Limit:      limit + 1, // one extra row tells us whether another page exists
	}
	if params.NextToken != "" {
		before, beforeID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Before = &before
		filter.BeforeID = beforeID
	}

	entries, err := s.repo.ListAuditLogs(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit logs")
		return nil, err
	}

	resp := &dto.ListAuditLogsResponse{Entries: entries}
	if len(entries) > limit {
		resp.Entries = entries[:limit]
		last := resp.Entries[limit-1]
		resp.NextToken = pagination.EncodeToken(last.Timestamp, last.AuditLogID)
	}
	if resp.Entries == nil {
		resp.Entries = []domain.AuditLogEntry{}
	}
	return resp, nil
}

func (s *auditService) ListEntityHistory(ctx context.Context, entityType, entityID string) ([]domain.AuditLogEntry, error) {
	entries, err := s.repo.ListAuditLogs(ctx, portsrepo.AuditLogFilter{EntityType: entityType, EntityID: entityID})
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return []domain.AuditLogEntry{}, nil
	}
	return entries, nil
}
