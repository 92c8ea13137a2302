package dto

import (
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordReceivableRequest defines the data captured when a customer's cheque is received.
type RecordReceivableRequest struct {
	CustomerID    string          `json:"customerID" binding:"required"`
	ChequeNumber  string          `json:"chequeNumber" binding:"required"`
	BankName      string          `json:"bankName" binding:"required"`
	BranchName    *string         `json:"branchName"`
	Amount        decimal.Decimal `json:"amount" binding:"gt=0"`
	ChequeDate    time.Time       `json:"chequeDate" binding:"required"`
	ReceivedDate  *time.Time      `json:"receivedDate"` // Optional, defaults to today
	Remarks       *string         `json:"remarks"`
	InvoiceNumber *string         `json:"invoiceNumber"`
}

// UpdateReceivableStatusRequest sets the status of a receivable.
type UpdateReceivableStatusRequest struct {
	Status  string  `json:"status" binding:"required,receivable_status"`
	Remarks *string `json:"remarks"`
}

// ListReceivablesParams defines query parameters for listing receivables.
type ListReceivablesParams struct {
	CustomerID string `form:"customerId"`
	Status     string `form:"status" binding:"omitempty,receivable_status"`
	Limit      int    `form:"limit,default=50" binding:"gte=1,lte=500"`
	Offset     int    `form:"offset,default=0" binding:"gte=0"`
}

// ReceivableResponse defines the data returned for a receivable.
type ReceivableResponse struct {
	ReceivableID  string                  `json:"receivableID"`
	CustomerID    string                  `json:"customerID"`
	InternalRef   string                  `json:"internalRef"`
	ChequeNumber  string                  `json:"chequeNumber"`
	BankName      string                  `json:"bankName"`
	BranchName    *string                 `json:"branchName,omitempty"`
	Amount        decimal.Decimal         `json:"amount"`
	ChequeDate    time.Time               `json:"chequeDate"`
	ReceivedDate  time.Time               `json:"receivedDate"`
	Status        domain.ReceivableStatus `json:"status"`
	ImagePath     *string                 `json:"imagePath,omitempty"`
	Remarks       *string                 `json:"remarks,omitempty"`
	InvoiceNumber *string                 `json:"invoiceNumber,omitempty"`
	Version       int64                   `json:"version"`
}

// ToReceivableResponse converts a domain.Receivable to ReceivableResponse DTO
func ToReceivableResponse(r *domain.Receivable) ReceivableResponse {
	return ReceivableResponse{
		ReceivableID:  r.ReceivableID,
		CustomerID:    r.CustomerID,
		InternalRef:   r.InternalRef,
		ChequeNumber:  r.ChequeNumber,
		BankName:      r.BankName,
		BranchName:    r.BranchName,
		Amount:        r.Amount,
		ChequeDate:    r.ChequeDate,
		ReceivedDate:  r.ReceivedDate,
		Status:        r.Status,
		ImagePath:     r.ImagePath,
		Remarks:       r.Remarks,
		InvoiceNumber: r.InvoiceNumber,
		Version:       r.Version,
	}
}

// ToListReceivableResponse converts a slice of domain.Receivable to response DTOs
func ToListReceivableResponse(items []domain.Receivable) []ReceivableResponse {
	res := make([]ReceivableResponse, len(items))
	for i := range items {
		res[i] = ToReceivableResponse(&items[i])
	}
	return res
}
