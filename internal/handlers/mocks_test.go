package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ChequeBookService ---
type MockChequeBookService struct {
	mock.Mock
}

func (m *MockChequeBookService) GetChequeBook(ctx context.Context, chequeBookID string) (*domain.ChequeBook, error) {
	args := m.Called(ctx, chequeBookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChequeBook), args.Error(1)
}
func (m *MockChequeBookService) ListChequeBooks(ctx context.Context, params dto.ListChequeBooksParams) ([]domain.ChequeBook, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChequeBook), args.Error(1)
}
func (m *MockChequeBookService) ListChequesByBook(ctx context.Context, chequeBookID string) ([]domain.Cheque, error) {
	args := m.Called(ctx, chequeBookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cheque), args.Error(1)
}
func (m *MockChequeBookService) CreateChequeBook(ctx context.Context, req dto.CreateChequeBookRequest, actorID string) (*domain.ChequeBook, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChequeBook), args.Error(1)
}
func (m *MockChequeBookService) DeactivateChequeBook(ctx context.Context, chequeBookID string, actorID string) (*domain.ChequeBook, error) {
	args := m.Called(ctx, chequeBookID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChequeBook), args.Error(1)
}
func (m *MockChequeBookService) NextAvailableCheque(ctx context.Context, chequeBookID string, actorID string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeBookID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

var _ portssvc.ChequeBookSvcFacade = (*MockChequeBookService)(nil)

// --- Mock ChequeService ---
type MockChequeService struct {
	mock.Mock
}

func (m *MockChequeService) GetCheque(ctx context.Context, chequeID string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}
func (m *MockChequeService) IssueCheque(ctx context.Context, req dto.IssueChequeRequest, actorID string) (*domain.Cheque, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}
func (m *MockChequeService) SetChequeStatus(ctx context.Context, chequeID string, status domain.ChequeStatus, remarks *string, actorID string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeID, status, remarks, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}
func (m *MockChequeService) MarkPrinted(ctx context.Context, chequeID string, actorID string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}
func (m *MockChequeService) ApplyApproved(ctx context.Context, request domain.ApprovalRequest) error {
	return m.Called(ctx, request).Error(0)
}
func (m *MockChequeService) ApplyRejected(ctx context.Context, request domain.ApprovalRequest) error {
	return m.Called(ctx, request).Error(0)
}

var _ portssvc.ChequeSvcFacade = (*MockChequeService)(nil)

// --- Mock ReceivableService ---
type MockReceivableService struct {
	mock.Mock
}

func (m *MockReceivableService) GetReceivable(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	args := m.Called(ctx, receivableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receivable), args.Error(1)
}
func (m *MockReceivableService) ListReceivables(ctx context.Context, params dto.ListReceivablesParams) ([]domain.Receivable, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receivable), args.Error(1)
}
func (m *MockReceivableService) RecordReceipt(ctx context.Context, req dto.RecordReceivableRequest, actorID string) (*domain.Receivable, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receivable), args.Error(1)
}
func (m *MockReceivableService) SetReceivableStatus(ctx context.Context, receivableID string, status domain.ReceivableStatus, remarks *string, actorID string) (*domain.Receivable, error) {
	args := m.Called(ctx, receivableID, status, remarks, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receivable), args.Error(1)
}
func (m *MockReceivableService) AttachImage(ctx context.Context, receivableID, filename, contentType string, content io.Reader, actorID string) (*domain.Receivable, error) {
	body, _ := io.ReadAll(content)
	args := m.Called(ctx, receivableID, filename, contentType, string(body), actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receivable), args.Error(1)
}

var _ portssvc.ReceivableSvcFacade = (*MockReceivableService)(nil)

// --- Mock ApprovalService ---
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) GetRequest(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) ListPendingApprovals(ctx context.Context) ([]domain.ApprovalRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) ListPendingForRole(ctx context.Context, role domain.Role) ([]domain.ApprovalRequest, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) CreateRequest(ctx context.Context, req dto.CreateApprovalRequest, requesterID string) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, req, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) Approve(ctx context.Context, requestID string, actorID string, actorRole domain.Role) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, requestID, actorID, actorRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) Reject(ctx context.Context, requestID string, actorID string) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, requestID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}
func (m *MockApprovalService) RegisterHandler(entityType string, handler ports.ApprovalHandler) {
	m.Called(entityType, handler)
}

var _ portssvc.ApprovalSvcFacade = (*MockApprovalService)(nil)

// --- Mock DueDateService ---
type MockDueDateService struct {
	mock.Mock
}

func (m *MockDueDateService) RunDueDateSweep(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetPdcExposure(ctx context.Context) (*dto.PdcExposureResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PdcExposureResponse), args.Error(1)
}

// --- Mock AuditService ---
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entityType, entityID, action, actorID, oldValue, newValue string) error {
	return m.Called(ctx, entityType, entityID, action, actorID, oldValue, newValue).Error(0)
}
func (m *MockAuditService) ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) (*dto.ListAuditLogsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListAuditLogsResponse), args.Error(1)
}
func (m *MockAuditService) ListEntityHistory(ctx context.Context, entityType, entityID string) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}
