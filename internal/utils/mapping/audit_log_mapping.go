package mapping

import (
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/models"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToModelAuditLog converts a domain AuditLogEntry to a model AuditLog
func ToModelAuditLog(d domain.AuditLogEntry) models.AuditLog {
	return models.AuditLog{
		AuditLogID: d.AuditLogID,
		EntityType: d.EntityType,
		EntityID:   d.EntityID,
		Action:     d.Action,
		ActorID:    d.ActorID,
		OldValue:   optional(d.OldValue),
		NewValue:   optional(d.NewValue),
		Timestamp:  d.Timestamp,
	}
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLogEntry
func ToDomainAuditLog(m models.AuditLog) domain.AuditLogEntry {
	return domain.AuditLogEntry{
		AuditLogID: m.AuditLogID,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Action:     m.Action,
		ActorID:    m.ActorID,
		OldValue:   deref(m.OldValue),
		NewValue:   deref(m.NewValue),
		Timestamp:  m.Timestamp,
	}
}
