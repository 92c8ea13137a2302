package mapping

import (
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/models"
)

// The audit columns and the domain audit block have the same fields, so the
// conversions below are plain struct conversions. Adding a field to one side
// without the other breaks the build here.

func toModelAudit(d domain.AuditFields) models.AuditFields { return models.AuditFields(d) }

func toDomainAudit(m models.AuditFields) domain.AuditFields { return domain.AuditFields(m) }
