package mapping

import (
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/models"
)

// ToModelReceivable converts a domain Receivable to a model Receivable
func ToModelReceivable(d domain.Receivable) models.Receivable {
	return models.Receivable{
		ReceivableID:  d.ReceivableID,
		CustomerID:    d.CustomerID,
		InternalRef:   d.InternalRef,
		ChequeNumber:  d.ChequeNumber,
		BankName:      d.BankName,
		BranchName:    d.BranchName,
		Amount:        d.Amount,
		ChequeDate:    d.ChequeDate,
		ReceivedDate:  d.ReceivedDate,
		Status:        string(d.Status),
		ImagePath:     d.ImagePath,
		Remarks:       d.Remarks,
		InvoiceNumber: d.InvoiceNumber,
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

// ToDomainReceivable converts a model Receivable to a domain Receivable
func ToDomainReceivable(m models.Receivable) domain.Receivable {
	return domain.Receivable{
		ReceivableID:  m.ReceivableID,
		CustomerID:    m.CustomerID,
		InternalRef:   m.InternalRef,
		ChequeNumber:  m.ChequeNumber,
		BankName:      m.BankName,
		BranchName:    m.BranchName,
		Amount:        m.Amount,
		ChequeDate:    m.ChequeDate,
		ReceivedDate:  m.ReceivedDate,
		Status:        domain.ReceivableStatus(m.Status),
		ImagePath:     m.ImagePath,
		Remarks:       m.Remarks,
		InvoiceNumber: m.InvoiceNumber,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}
