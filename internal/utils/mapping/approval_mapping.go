package mapping

import (
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/models"
)

// ToModelApprovalRequest converts a domain ApprovalRequest to a model ApprovalRequest
func ToModelApprovalRequest(d domain.ApprovalRequest) models.ApprovalRequest {
	var payload *string
	if d.Payload != "" {
		p := d.Payload
		payload = &p
	}
	return models.ApprovalRequest{
		RequestID:    d.RequestID,
		EntityType:   d.EntityType,
		EntityID:     d.EntityID,
		ActionType:   d.ActionType,
		Amount:       d.Amount,
		Payload:      payload,
		Status:       string(d.Status),
		CurrentStage: string(d.CurrentStage),
		RequestedBy:  d.RequestedBy,
		RequestedAt:  d.RequestedAt,
		CheckedBy:    d.CheckedBy,
		CheckedAt:    d.CheckedAt,
		ApprovedBy:   d.ApprovedBy,
		ApprovedAt:   d.ApprovedAt,
		AuthorizedBy: d.AuthorizedBy,
		AuthorizedAt: d.AuthorizedAt,
		RejectedBy:   d.RejectedBy,
		ActionedAt:   d.ActionedAt,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

// ToDomainApprovalRequest converts a model ApprovalRequest to a domain ApprovalRequest
func ToDomainApprovalRequest(m models.ApprovalRequest) domain.ApprovalRequest {
	d := domain.ApprovalRequest{
		RequestID:    m.RequestID,
		EntityType:   m.EntityType,
		EntityID:     m.EntityID,
		ActionType:   m.ActionType,
		Amount:       m.Amount,
		Status:       domain.RequestStatus(m.Status),
		CurrentStage: domain.Stage(m.CurrentStage),
		RequestedBy:  m.RequestedBy,
		RequestedAt:  m.RequestedAt,
		CheckedBy:    m.CheckedBy,
		CheckedAt:    m.CheckedAt,
		ApprovedBy:   m.ApprovedBy,
		ApprovedAt:   m.ApprovedAt,
		AuthorizedBy: m.AuthorizedBy,
		AuthorizedAt: m.AuthorizedAt,
		RejectedBy:   m.RejectedBy,
		ActionedAt:   m.ActionedAt,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
	if m.Payload != nil {
		d.Payload = *m.Payload
	}
	return d
}
