package persistence

import (
	"context"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
)

// UserProfileRepository reads display metadata from the users table owned by
// the surrounding application. This engine never writes to it.
type UserProfileRepository interface {
	// GetByIDs returns the profiles for the given users; unknown ids are absent
	// from the result
	GetByIDs(ctx context.Context, userIDs []string) ([]*entity.UserProfile, error)
}
