package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
)

// TimeFrame selects the leaderboard ranking window
type TimeFrame string

// Supported leaderboard windows
const (
	TimeFrameAllTime TimeFrame = "all_time"
	TimeFrameWeekly  TimeFrame = "weekly"
	TimeFrameMonthly TimeFrame = "monthly"
)

// IsValid reports whether the time frame is one of the supported windows
func (t TimeFrame) IsValid() bool {
	return t == TimeFrameAllTime || t == TimeFrameWeekly || t == TimeFrameMonthly
}

// CreatePointRequest is the input to the ledger writer
type CreatePointRequest struct {
	UserID   string
	Amount   decimal.Decimal
	Action   entity.PointAction // defaults to increment when empty
	Source   string
	Metadata map[string]any
}

// PointResult pairs an appended ledger entry with the balance row it produced
type PointResult struct {
	Point     *entity.PointTransaction
	UserPoint *entity.UserPoint
}

// HistoryRequest filters and paginates one user's ledger history
type HistoryRequest struct {
	UserID    string
	Source    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int // defaults to 20
	Offset    int
}

// Pagination describes the full result set behind a returned page
type Pagination struct {
	Total  int64
	Offset int
	Limit  int
}

// HistoryResult is one page of ledger history plus pagination metadata
type HistoryResult struct {
	Points     []*entity.PointTransaction
	Pagination Pagination
}

// LeaderboardParams selects a leaderboard page
type LeaderboardParams struct {
	Limit     int       // defaults to 10
	Offset    int
	TimeFrame TimeFrame // defaults to all_time
}

// LeaderboardEntry is one ranked leaderboard row. Balance means all-time
// balance for the all_time window and points earned in the window otherwise;
// Level always reflects the all-time balance.
type LeaderboardEntry struct {
	Rank              int
	UserID            string
	TagName           string
	DisplayName       string
	ProfilePictureURL string
	Balance           decimal.Decimal
	Level             int
}

// LeaderboardResult is a ranked page of users plus pagination metadata
type LeaderboardResult struct {
	Leaderboard []LeaderboardEntry
	Pagination  Pagination
	TimeFrame   TimeFrame
}

// PointsUseCase is the contract the points engine exposes to collaborator
// modules and the HTTP layer.
type PointsUseCase interface {
	// AwardPoints records a point award for an activity. It is best-effort:
	// validation problems and storage failures are logged and yield a nil
	// result, never an error, so rewarding can never break the caller's
	// primary operation.
	AwardPoints(ctx context.Context, userID string, activity entity.Activity, metadata map[string]any) *PointResult

	// CreatePoint appends a ledger entry and updates the balance aggregate as
	// one atomic unit. Unlike AwardPoints, failures propagate to the caller.
	CreatePoint(ctx context.Context, req CreatePointRequest) (*PointResult, error)

	// GetUserPoints returns a user's balance row, or ErrUserNotFound if the
	// user has never earned or spent points
	GetUserPoints(ctx context.Context, userID string) (*entity.UserPoint, error)

	// GetPointHistory returns a filtered, paginated page of a user's ledger
	// entries, newest first
	GetPointHistory(ctx context.Context, req HistoryRequest) (*HistoryResult, error)

	// GetLeaderboard returns a ranked page of users for the requested window
	GetLeaderboard(ctx context.Context, params LeaderboardParams) (*LeaderboardResult, error)
}
