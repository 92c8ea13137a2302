package services

import (
	"context"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/dto"
)

// ChequeBookReaderSvc defines read operations for cheque books
type ChequeBookReaderSvc interface {
	GetChequeBook(ctx context.Context, chequeBookID string) (*domain.ChequeBook, error)
	ListChequeBooks(ctx context.Context, params dto.ListChequeBooksParams) ([]domain.ChequeBook, error)
	ListChequesByBook(ctx context.Context, chequeBookID string) ([]domain.Cheque, error)
}

// ChequeBookAllocatorSvc allocates and retires numbered ranges.
type ChequeBookAllocatorSvc interface {
	// CreateChequeBook reserves [StartNumber, EndNumber] for the account and materializes
	// one UNUSED cheque per number, all or nothing.
	CreateChequeBook(ctx context.Context, req dto.CreateChequeBookRequest, actorID string) (*domain.ChequeBook, error)

	// DeactivateChequeBook retires a book; its range is left untouched.
	DeactivateChequeBook(ctx context.Context, chequeBookID string, actorID string) (*domain.ChequeBook, error)

	// NextAvailableCheque returns the lowest UNUSED leaf and moves the book cursor past it.
	NextAvailableCheque(ctx context.Context, chequeBookID string, actorID string) (*domain.Cheque, error)
}

// ChequeBookSvcFacade combines all cheque book service interfaces
type ChequeBookSvcFacade interface {
	ChequeBookReaderSvc
	ChequeBookAllocatorSvc
}
