package persistence

import (
	"context"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
)

// UserPointRepository defines operations on the derived balance aggregate.
// Only the ledger writer mutates it, inside the same unit of work as the
// matching ledger append.
type UserPointRepository interface {
	// GetByUserID returns a user's balance row, or ErrUserNotFound if the user
	// has never earned or spent points
	GetByUserID(ctx context.Context, userID string) (*entity.UserPoint, error)

	// GetByUserIDs returns the balance rows for the given users; users without
	// a row are simply absent from the result
	GetByUserIDs(ctx context.Context, userIDs []string) ([]*entity.UserPoint, error)

	// Create inserts the aggregate row for a user's first ledger entry
	Create(ctx context.Context, userPoint *entity.UserPoint) error

	// Update persists a new balance and level for an existing row
	Update(ctx context.Context, userPoint *entity.UserPoint) error

	// TopByBalance returns rows ordered by balance descending with user_id
	// ascending as tiebreak, sliced by limit and offset
	TopByBalance(ctx context.Context, limit, offset int) ([]*entity.UserPoint, error)

	// Count returns the total number of balance rows
	Count(ctx context.Context) (int64, error)
}
