package repositories

import (
	"context"
)

// TransactionManager runs a unit of work. Repository calls made with the ctx handed to fn
// join the same transaction; fn returning an error rolls everything back.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// RepositoryWithTx is a marker interface for repositories that support transactions
type RepositoryWithTx interface {
	TransactionManager
}
