package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
)

// HistoryFilter selects a slice of one user's ledger history
type HistoryFilter struct {
	UserID    string
	Source    string     // optional exact match on the activity tag
	StartDate *time.Time // optional inclusive lower bound on created_at
	EndDate   *time.Time // optional inclusive upper bound on created_at
	Limit     int
	Offset    int
}

// WindowedSum is one user's summed increment amounts within a time window
type WindowedSum struct {
	UserID string
	Total  decimal.Decimal
}

// PointRepository defines operations on the append-only points ledger.
// Ledger rows are never updated or deleted.
type PointRepository interface {
	// Create appends a ledger entry
	Create(ctx context.Context, point *entity.PointTransaction) error

	// ListByUser returns a page of one user's entries ordered by created_at
	// descending, applying the filter's source and date bounds
	ListByUser(ctx context.Context, filter HistoryFilter) ([]*entity.PointTransaction, error)

	// CountByUser returns the total number of entries matching the filter,
	// ignoring its limit and offset
	CountByUser(ctx context.Context, filter HistoryFilter) (int64, error)

	// SumIncrementsSince groups increment entries created at or after the given
	// time by user and sums their amounts, ordered by the sum descending with
	// user_id ascending as tiebreak, sliced by limit and offset
	SumIncrementsSince(ctx context.Context, since time.Time, limit, offset int) ([]WindowedSum, error)

	// CountEarnersSince returns the number of distinct users with at least one
	// increment entry created at or after the given time
	CountEarnersSince(ctx context.Context, since time.Time) (int64, error)
}
