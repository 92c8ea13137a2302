package dto

import (
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IssueChequeRequest drafts an outgoing cheque. Either ChequeID or ChequeBookID must be
// given; with only a book the lowest unused leaf is taken.
type IssueChequeRequest struct {
	ChequeID       string                 `json:"chequeID" binding:"required_without=ChequeBookID"`
	ChequeBookID   string                 `json:"chequeBookID"`
	Amount         decimal.Decimal        `json:"amount" binding:"gt=0"`
	PayeeName      *string                `json:"payeeName"`
	VendorID       *string                `json:"vendorID"`
	ChequeDate     time.Time              `json:"chequeDate" binding:"required"`
	Remarks        *string                `json:"remarks"`
	WorkflowStatus *domain.WorkflowStatus `json:"workflowStatus" binding:"omitempty,oneof=DRAFT APPROVED PRINTED"`
}

// UpdateChequeStatusRequest sets the physical status of a cheque.
type UpdateChequeStatusRequest struct {
	Status  string  `json:"status" binding:"required,cheque_status"`
	Remarks *string `json:"remarks"`
}

// ChequeResponse defines the data returned for a cheque.
type ChequeResponse struct {
	ChequeID       string                `json:"chequeID"`
	ChequeBookID   string                `json:"chequeBookID"`
	ChequeNumber   int64                 `json:"chequeNumber"`
	Status         domain.ChequeStatus   `json:"status"`
	WorkflowStatus domain.WorkflowStatus `json:"workflowStatus"`
	Amount         *decimal.Decimal      `json:"amount,omitempty"`
	PayeeName      *string               `json:"payeeName,omitempty"`
	VendorID       *string               `json:"vendorID,omitempty"`
	ChequeDate     *time.Time            `json:"chequeDate,omitempty"`
	Remarks        *string               `json:"remarks,omitempty"`
	Version        int64                 `json:"version"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy  string                `json:"lastUpdatedBy"`
}

// ToChequeResponse converts a domain.Cheque to ChequeResponse DTO
func ToChequeResponse(c *domain.Cheque) ChequeResponse {
	return ChequeResponse{
		ChequeID:       c.ChequeID,
		ChequeBookID:   c.ChequeBookID,
		ChequeNumber:   c.ChequeNumber,
		Status:         c.Status,
		WorkflowStatus: c.WorkflowStatus,
		Amount:         c.Amount,
		PayeeName:      c.PayeeName,
		VendorID:       c.VendorID,
		ChequeDate:     c.ChequeDate,
		Remarks:        c.Remarks,
		Version:        c.Version,
		LastUpdatedAt:  c.LastUpdatedAt,
		LastUpdatedBy:  c.LastUpdatedBy,
	}
}

// ToListChequeResponse converts a slice of domain.Cheque to response DTOs
func ToListChequeResponse(cheques []domain.Cheque) []ChequeResponse {
	res := make([]ChequeResponse, len(cheques))
	for i := range cheques {
		res[i] = ToChequeResponse(&cheques[i])
	}
	return res
}
