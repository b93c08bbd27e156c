package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
)

// UserPoint is the derived balance aggregate, one row per user that has ever
// earned or spent points. Balance equals the signed sum of the user's ledger
// entries and Level is always CalculateLevel(Balance); the ledger writer is the
// only component allowed to mutate it.
type UserPoint struct {
	UserID    string          // Unique key, 1:1 with a user
	Balance   decimal.Decimal // Signed net point total
	Level     int             // Tier in [1,10], derived from Balance
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUserPoint creates the aggregate for a user's first ledger entry.
// The initial balance is the entry's signed delta.
func NewUserPoint(userID string, delta decimal.Decimal, timeProvider coreport.TimeProvider) (*UserPoint, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &UserPoint{
		UserID:    userID,
		Balance:   delta,
		Level:     CalculateLevel(delta),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApplyDelta adds a signed delta to the balance and rederives the level
func (u *UserPoint) ApplyDelta(delta decimal.Decimal, timeProvider coreport.TimeProvider) {
	u.Balance = u.Balance.Add(delta)
	u.Level = CalculateLevel(u.Balance)
	u.UpdatedAt = timeProvider.Now()
}

// UserProfile carries the display metadata joined into leaderboard rows.
// It is read from the users table owned by the surrounding application.
type UserProfile struct {
	UserID            string
	DisplayName       string
	TagName           string
	ProfilePictureURL string
}
