package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/google/uuid"
)

// AllocationLockKey is the Locker key that serializes cheque book allocation for an account.
func AllocationLockKey(accountID string) string {
	return "chequebook:account:" + accountID
}

type chequeBookService struct {
	BaseService
	txManager  portsrepo.TransactionManager
	bookRepo   portsrepo.ChequeBookRepositoryFacade
	chequeRepo portsrepo.ChequeRepositoryFacade
	audit      portssvc.AuditTrailSvc
	locker     ports.Locker
}

// ChequeBookServiceOption is a functional option for configuring the cheque book service
type ChequeBookServiceOption func(*chequeBookService)

// WithAllocationLocker serializes allocations per account through locker before the
// database transaction starts.
func WithAllocationLocker(locker ports.Locker) ChequeBookServiceOption {
	return func(s *chequeBookService) {
		s.locker = locker
	}
}

// WithChequeBookClock overrides the service clock.
func WithChequeBookClock(clock func() time.Time) ChequeBookServiceOption {
	return func(s *chequeBookService) {
		s.Clock = clock
	}
}

// NewChequeBookService creates the cheque book allocator.
func NewChequeBookService(
	txManager portsrepo.TransactionManager,
	bookRepo portsrepo.ChequeBookRepositoryFacade,
	chequeRepo portsrepo.ChequeRepositoryFacade,
	audit portssvc.AuditTrailSvc,
	options ...ChequeBookServiceOption,
) portssvc.ChequeBookSvcFacade {
	svc := &chequeBookService{
		txManager:  txManager,
		bookRepo:   bookRepo,
		chequeRepo: chequeRepo,
		audit:      audit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ChequeBookSvcFacade = (*chequeBookService)(nil)

func (s *chequeBookService) CreateChequeBook(ctx context.Context, req dto.CreateChequeBookRequest, actorID string) (*domain.ChequeBook, error) {
	accountID := strings.TrimSpace(req.AccountID)
	switch {
	case accountID == "":
		return nil, apperrors.NewValidationError("accountID is required")
	case req.StartNumber < 0 || req.EndNumber < 0:
		return nil, apperrors.NewValidationError("cheque numbers must not be negative")
	case req.StartNumber > req.EndNumber:
		return nil, apperrors.NewValidationError(fmt.Sprintf("start number %d is greater than end number %d", req.StartNumber, req.EndNumber))
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, AllocationLockKey(accountID))
		if err != nil {
			s.LogError(ctx, err, "Failed to acquire allocation lock", slog.String("account_id", accountID))
			return nil, err
		}
		defer unlock()
	}

	now := s.Now().UTC()
	issuedDate := domain.DateOnly(now)
	if req.IssuedDate != nil {
		issuedDate = domain.DateOnly(*req.IssuedDate)
	}

	book := domain.ChequeBook{
		ChequeBookID:     uuid.NewString(),
		AccountID:        accountID,
		SeriesIdentifier: strings.TrimSpace(req.SeriesIdentifier),
		StartNumber:      req.StartNumber,
		EndNumber:        req.EndNumber,
		CurrentNumber:    req.StartNumber,
		IssuedDate:       issuedDate,
		Active:           true,
		AuditFields:      domain.NewAuditFields(actorID, now),
	}

	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.bookRepo.LockAccountAllocation(txCtx, accountID); err != nil {
			return err
		}

		overlapping, err := s.bookRepo.FindOverlappingChequeBooks(txCtx, accountID, req.StartNumber, req.EndNumber)
		if err != nil {
			return err
		}
		for _, existing := range overlapping {
			if existing.Active && existing.Overlaps(req.StartNumber, req.EndNumber) {
				return apperrors.NewConflictError(fmt.Sprintf("range %d-%d overlaps cheque book %s (%d-%d)",
					req.StartNumber, req.EndNumber, existing.ChequeBookID, existing.StartNumber, existing.EndNumber))
			}
		}

		if err := s.bookRepo.SaveChequeBook(txCtx, book); err != nil {
			return err
		}
		if err := s.chequeRepo.SaveCheques(txCtx, materializeLeaves(book)); err != nil {
			return err
		}
		return s.audit.Record(txCtx, domain.EntityTypeChequeBook, book.ChequeBookID, domain.AuditCreate, actorID,
			"", fmt.Sprintf("account=%s range=%d-%d", accountID, book.StartNumber, book.EndNumber))
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to allocate cheque book",
				slog.String("account_id", accountID),
				slog.Int64("start", req.StartNumber),
				slog.Int64("end", req.EndNumber))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cheque book allocated",
		slog.String("cheque_book_id", book.ChequeBookID),
		slog.String("account_id", accountID),
		slog.Int64("leaves", book.TotalLeaves()))
	return &book, nil
}

// materializeLeaves builds one UNUSED cheque per number of the book, ascending.
func materializeLeaves(book domain.ChequeBook) []domain.Cheque {
	cheques := make([]domain.Cheque, 0, book.TotalLeaves())
	for n := book.StartNumber; n <= book.EndNumber; n++ {
		cheques = append(cheques, domain.Cheque{
			ChequeID:       uuid.NewString(),
			ChequeBookID:   book.ChequeBookID,
			ChequeNumber:   n,
			Status:         domain.ChequeUnused,
			WorkflowStatus: domain.WorkflowDraft,
			AuditFields:    book.AuditFields,
		})
	}
	return cheques
}

func (s *chequeBookService) GetChequeBook(ctx context.Context, chequeBookID string) (*domain.ChequeBook, error) {
	book, err := s.bookRepo.FindChequeBookByID(ctx, chequeBookID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cheque book", slog.String("cheque_book_id", chequeBookID))
		}
		return nil, err
	}
	return book, nil
}

func (s *chequeBookService) ListChequeBooks(ctx context.Context, params dto.ListChequeBooksParams) ([]domain.ChequeBook, error) {
	books, err := s.bookRepo.ListChequeBooks(ctx, params.AccountID, params.ActiveOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cheque books", slog.String("account_id", params.AccountID))
		return nil, err
	}
	if books == nil {
		return []domain.ChequeBook{}, nil
	}
	return books, nil
}

func (s *chequeBookService) ListChequesByBook(ctx context.Context, chequeBookID string) ([]domain.Cheque, error) {
	if _, err := s.GetChequeBook(ctx, chequeBookID); err != nil {
		return nil, err
	}
	cheques, err := s.chequeRepo.ListChequesByBook(ctx, chequeBookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cheques", slog.String("cheque_book_id", chequeBookID))
		return nil, err
	}
	if cheques == nil {
		return []domain.Cheque{}, nil
	}
	return cheques, nil
}

func (s *chequeBookService) DeactivateChequeBook(ctx context.Context, chequeBookID string, actorID string) (*domain.ChequeBook, error) {
	var book *domain.ChequeBook
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		book, err = s.bookRepo.FindChequeBookByID(txCtx, chequeBookID)
		if err != nil {
			return err
		}
		if !book.Active {
			return apperrors.NewConflictError(fmt.Sprintf("cheque book %s is already inactive", chequeBookID))
		}
		book.Active = false
		book.Touch(actorID, s.Now().UTC())
		if err := s.bookRepo.UpdateChequeBook(txCtx, book); err != nil {
			return err
		}
		return s.audit.Record(txCtx, domain.EntityTypeChequeBook, chequeBookID, domain.AuditDeactivate, actorID, "active", "inactive")
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Cheque book deactivated", slog.String("cheque_book_id", chequeBookID))
	return book, nil
}

func (s *chequeBookService) NextAvailableCheque(ctx context.Context, chequeBookID string, actorID string) (*domain.Cheque, error) {
	var cheque *domain.Cheque
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		book, err := s.bookRepo.FindChequeBookByID(txCtx, chequeBookID)
		if err != nil {
			return err
		}
		cheque, err = nextUnusedLeaf(txCtx, s.chequeRepo, book)
		if err != nil {
			return err
		}
		oldCursor := book.CurrentNumber
		if !book.AdvanceCursor(cheque.ChequeNumber) {
			return nil
		}
		book.Touch(actorID, s.Now().UTC())
		if err := s.bookRepo.UpdateChequeBook(txCtx, book); err != nil {
			return err
		}
		return s.audit.Record(txCtx, domain.EntityTypeChequeBook, chequeBookID, domain.AuditUpdate, actorID,
			fmt.Sprintf("currentNumber=%d", oldCursor), fmt.Sprintf("currentNumber=%d", book.CurrentNumber))
	})
	if err != nil {
		return nil, err
	}
	return cheque, nil
}

// nextUnusedLeaf returns the lowest UNUSED cheque of an active book.
func nextUnusedLeaf(ctx context.Context, repo portsrepo.ChequeReader, book *domain.ChequeBook) (*domain.Cheque, error) {
	if !book.Active {
		return nil, apperrors.NewConflictError(fmt.Sprintf("cheque book %s is inactive", book.ChequeBookID))
	}
	cheque, err := repo.FindLowestUnusedCheque(ctx, book.ChequeBookID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewConflictError(fmt.Sprintf("cheque book %s has no unused cheques left", book.ChequeBookID))
	}
	return cheque, err
}
