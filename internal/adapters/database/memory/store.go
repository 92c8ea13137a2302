// Package memory keeps every repository in process memory. It backs the test suites and
// DATABASE_DRIVER=memory; transactions are serialized and roll back by snapshot.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_management_app/internal/core/ports/repositories"
)

type txKey struct{}

// Store is the shared state behind all memory repositories.
type Store struct {
	txMu sync.Mutex // held for the whole of a transaction
	mu   sync.RWMutex

	books       map[string]domain.ChequeBook
	cheques     map[string]domain.Cheque
	receivables map[string]domain.Receivable
	requests    map[string]domain.ApprovalRequest
	auditLogs   []domain.AuditLogEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		books:       make(map[string]domain.ChequeBook),
		cheques:     make(map[string]domain.Cheque),
		receivables: make(map[string]domain.Receivable),
		requests:    make(map[string]domain.ApprovalRequest),
	}
}

// NewRepositoryProvider wires every memory repository around one store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:      store,
		ChequeBookRepo: &ChequeBookRepository{store: store},
		ChequeRepo:     &ChequeRepository{store: store},
		ReceivableRepo: &ReceivableRepository{store: store},
		ApprovalRepo:   &ApprovalRequestRepository{store: store},
		AuditLogRepo:   &AuditLogRepository{store: store},
		ReportingRepo:  &ReportingRepository{store: store},
	}
}

var _ portsrepo.TransactionManager = (*Store)(nil)

type snapshot struct {
	books       map[string]domain.ChequeBook
	cheques     map[string]domain.Cheque
	receivables map[string]domain.Receivable
	requests    map[string]domain.ApprovalRequest
	auditLen    int
}

// WithinTx runs fn as one unit of work. Calls nested inside fn join the outer transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) == s {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snap := snapshot{
		books:       maps.Clone(s.books),
		cheques:     maps.Clone(s.cheques),
		receivables: maps.Clone(s.receivables),
		requests:    maps.Clone(s.requests),
		auditLen:    len(s.auditLogs),
	}
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.mu.Lock()
		s.books = snap.books
		s.cheques = snap.cheques
		s.receivables = snap.receivables
		s.requests = snap.requests
		s.auditLogs = s.auditLogs[:snap.auditLen]
		s.mu.Unlock()
		return err
	}
	return nil
}

// AuditLogCount reports how many audit entries have been written.
func (s *Store) AuditLogCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.auditLogs)
}
