package mapping

import (
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/models"
)

// ToModelChequeBook converts a domain ChequeBook to a model ChequeBook
func ToModelChequeBook(d domain.ChequeBook) models.ChequeBook {
	return models.ChequeBook{
		ChequeBookID:     d.ChequeBookID,
		AccountID:        d.AccountID,
		SeriesIdentifier: d.SeriesIdentifier,
		StartNumber:      d.StartNumber,
		EndNumber:        d.EndNumber,
		CurrentNumber:    d.CurrentNumber,
		IssuedDate:       d.IssuedDate,
		Active:           d.Active,
		AuditFields:      toModelAudit(d.AuditFields),
	}
}

// ToDomainChequeBook converts a model ChequeBook to a domain ChequeBook
func ToDomainChequeBook(m models.ChequeBook) domain.ChequeBook {
	return domain.ChequeBook{
		ChequeBookID:     m.ChequeBookID,
		AccountID:        m.AccountID,
		SeriesIdentifier: m.SeriesIdentifier,
		StartNumber:      m.StartNumber,
		EndNumber:        m.EndNumber,
		CurrentNumber:    m.CurrentNumber,
		IssuedDate:       m.IssuedDate,
		Active:           m.Active,
		AuditFields:      toDomainAudit(m.AuditFields),
	}
}

// ToModelCheque converts a domain Cheque to a model Cheque
func ToModelCheque(d domain.Cheque) models.Cheque {
	return models.Cheque{
		ChequeID:       d.ChequeID,
		ChequeBookID:   d.ChequeBookID,
		ChequeNumber:   d.ChequeNumber,
		Status:         string(d.Status),
		WorkflowStatus: string(d.WorkflowStatus),
		Amount:         d.Amount,
		PayeeName:      d.PayeeName,
		ChequeDate:     d.ChequeDate,
		VendorID:       d.VendorID,
		Remarks:        d.Remarks,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

// ToDomainCheque converts a model Cheque to a domain Cheque
func ToDomainCheque(m models.Cheque) domain.Cheque {
	return domain.Cheque{
		ChequeID:       m.ChequeID,
		ChequeBookID:   m.ChequeBookID,
		ChequeNumber:   m.ChequeNumber,
		Status:         domain.ChequeStatus(m.Status),
		WorkflowStatus: domain.WorkflowStatus(m.WorkflowStatus),
		Amount:         m.Amount,
		PayeeName:      m.PayeeName,
		ChequeDate:     m.ChequeDate,
		VendorID:       m.VendorID,
		Remarks:        m.Remarks,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}
