package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/core/services"
	"github.com/SscSPs/cheque_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fixedNow is the wall clock every service in the suites sees.
var fixedNow = time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// memoryFixture wires real services around one in-memory store.
type memoryFixture struct {
	store    *memory.Store
	repos    portsrepo.RepositoryProvider
	audit    portssvc.AuditTrailSvc
	books    portssvc.ChequeBookSvcFacade
	cheques  portssvc.ChequeSvcFacade
	notifier *recordingNotifier
}

func newMemoryFixture(chequeOpts ...services.ChequeServiceOption) *memoryFixture {
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	audit := services.NewAuditService(repos.AuditLogRepo)
	f := &memoryFixture{
		store:    store,
		repos:    repos,
		audit:    audit,
		notifier: &recordingNotifier{},
	}
	f.books = services.NewChequeBookService(repos.TxManager, repos.ChequeBookRepo, repos.ChequeRepo, audit,
		services.WithChequeBookClock(fixedClock))
	f.cheques = services.NewChequeService(repos.TxManager, repos.ChequeRepo, repos.ChequeBookRepo, audit,
		append([]services.ChequeServiceOption{
			services.WithChequeClock(fixedClock),
			services.WithApprovalRequests(repos.ApprovalRepo),
		}, chequeOpts...)...)
	return f
}

func (f *memoryFixture) approvals(opts ...services.ApprovalServiceOption) portssvc.ApprovalSvcFacade {
	base := []services.ApprovalServiceOption{
		services.WithApprovalClock(fixedClock),
		services.WithApprovalNotifier(f.notifier),
		services.WithApprovalHandler(domain.EntityTypeCheque, f.cheques),
	}
	return services.NewApprovalService(f.repos.TxManager, f.repos.ApprovalRepo, f.audit, append(base, opts...)...)
}

func (f *memoryFixture) newBook(t require.TestingT, accountID string, start, end int64) *domain.ChequeBook {
	book, err := f.books.CreateChequeBook(context.Background(), dto.CreateChequeBookRequest{
		AccountID:   accountID,
		StartNumber: start,
		EndNumber:   end,
	}, "maker-1")
	require.NoError(t, err)
	return book
}

// draftCheque drafts the lowest unused leaf of book for amount.
func (f *memoryFixture) draftCheque(t require.TestingT, book *domain.ChequeBook, amount int64, chequeDate time.Time) *domain.Cheque {
	payee := "Acme Supplies"
	cheque, err := f.cheques.IssueCheque(context.Background(), dto.IssueChequeRequest{
		ChequeBookID: book.ChequeBookID,
		Amount:       decimal.NewFromInt(amount),
		PayeeName:    &payee,
		ChequeDate:   chequeDate,
	}, "maker-1")
	require.NoError(t, err)
	return cheque
}

// recordingNotifier keeps every notification it receives.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, note domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, note)
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.Type)
	}
	return out
}

// MockAuditTrailSvc is a mock type for the AuditTrailSvc interface
type MockAuditTrailSvc struct {
	mock.Mock
}

func (m *MockAuditTrailSvc) Record(ctx context.Context, entityType, entityID, action, actorID, oldValue, newValue string) error {
	args := m.Called(ctx, entityType, entityID, action, actorID, oldValue, newValue)
	return args.Error(0)
}

func (m *MockAuditTrailSvc) ListAuditLogs(ctx context.Context, params dto.ListAuditLogsParams) (*dto.ListAuditLogsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListAuditLogsResponse), args.Error(1)
}

func (m *MockAuditTrailSvc) ListEntityHistory(ctx context.Context, entityType, entityID string) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}
