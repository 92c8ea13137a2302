package dto

import (
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
)

// CreateChequeBookRequest defines the data needed to allocate a new cheque book.
type CreateChequeBookRequest struct {
	AccountID        string     `json:"accountID" binding:"required"`
	SeriesIdentifier string     `json:"seriesIdentifier"`
	StartNumber      int64      `json:"startNumber" binding:"gte=0"`
	EndNumber        int64      `json:"endNumber" binding:"gte=0"`
	IssuedDate       *time.Time `json:"issuedDate"` // Optional, defaults to today
}

// ListChequeBooksParams defines query parameters for listing cheque books.
type ListChequeBooksParams struct {
	AccountID  string `form:"accountId"`
	ActiveOnly bool   `form:"activeOnly,default=false"`
}

// ChequeBookResponse defines the data returned for a cheque book.
type ChequeBookResponse struct {
	ChequeBookID     string    `json:"chequeBookID"`
	AccountID        string    `json:"accountID"`
	SeriesIdentifier string    `json:"seriesIdentifier"`
	StartNumber      int64     `json:"startNumber"`
	EndNumber        int64     `json:"endNumber"`
	CurrentNumber    int64     `json:"currentNumber"`
	TotalLeaves      int64     `json:"totalLeaves"`
	IssuedDate       time.Time `json:"issuedDate"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"createdAt"`
	CreatedBy        string    `json:"createdBy"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy    string    `json:"lastUpdatedBy"`
}

// ToChequeBookResponse converts a domain.ChequeBook to ChequeBookResponse DTO
func ToChequeBookResponse(b *domain.ChequeBook) ChequeBookResponse {
	return ChequeBookResponse{
		ChequeBookID:     b.ChequeBookID,
		AccountID:        b.AccountID,
		SeriesIdentifier: b.SeriesIdentifier,
		StartNumber:      b.StartNumber,
		EndNumber:        b.EndNumber,
		CurrentNumber:    b.CurrentNumber,
		TotalLeaves:      b.TotalLeaves(),
		IssuedDate:       b.IssuedDate,
		Active:           b.Active,
		CreatedAt:        b.CreatedAt,
		CreatedBy:        b.CreatedBy,
		LastUpdatedAt:    b.LastUpdatedAt,
		LastUpdatedBy:    b.LastUpdatedBy,
	}
}

// ToListChequeBookResponse converts a slice of domain.ChequeBook to response DTOs
func ToListChequeBookResponse(books []domain.ChequeBook) []ChequeBookResponse {
	res := make([]ChequeBookResponse, len(books))
	for i := range books {
		res[i] = ToChequeBookResponse(&books[i])
	}
	return res
}
