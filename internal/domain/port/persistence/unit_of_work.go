package persistence

import (
	"context"
)

// UnitOfWork coordinates the ledger append and balance upsert so that no
// intermediate state (ledger row without matching balance update) is ever
// observable by a concurrent reader.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetPointRepository returns a ledger repository bound to the current transaction
	GetPointRepository(ctx context.Context) PointRepository

	// GetUserPointRepository returns a balance repository bound to the current transaction
	GetUserPointRepository(ctx context.Context) UserPointRepository
}
