package ports

import (
	"context"
	"io"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
)

// Locker hands out mutual exclusion keyed by an arbitrary string. The returned func
// releases the lock and is safe to call once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// ImageStore keeps scanned copies of received cheques.
type ImageStore interface {
	// Put stores the content under key and returns the key it was stored under.
	Put(ctx context.Context, key string, contentType string, r io.Reader) (string, error)
	// Open streams a stored image back.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Notifier is the collaborator alert sink. Implementations must not block the caller
// for long and report failures through logging only.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// ApprovalHandler applies the outcome of a finished approval request to its target entity.
// Both calls run inside the transaction that terminates the request.
type ApprovalHandler interface {
	ApplyApproved(ctx context.Context, request domain.ApprovalRequest) error
	ApplyRejected(ctx context.Context, request domain.ApprovalRequest) error
}

// ApprovalRequestValidator is optionally implemented by an ApprovalHandler to vet a request
// before it is created. It may fill in details such as the amount.
type ApprovalRequestValidator interface {
	ValidateRequest(ctx context.Context, request *domain.ApprovalRequest) error
}
