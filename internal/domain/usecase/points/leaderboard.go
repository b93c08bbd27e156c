package points

import (
	"context"
	"time"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
	"github.com/socialfi-labs/points-engine/internal/domain/port/persistence"
	"github.com/socialfi-labs/points-engine/internal/domain/port/usecase"
)

// DefaultLeaderboardLimit is the page size used when the caller does not set one
const DefaultLeaderboardLimit = 10

// LeaderboardQuery ranks users by points over a time window. The all_time
// window scans the balance aggregate directly; weekly and monthly windows have
// no materialized aggregate, so they sum increment ledger entries on the fly.
// The two strategies stay separate code paths behind one entry point.
type LeaderboardQuery struct {
	pointRepo     persistence.PointRepository
	userPointRepo persistence.UserPointRepository
	profileRepo   persistence.UserProfileRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewLeaderboardQuery creates a leaderboard query over the given repositories
func NewLeaderboardQuery(
	pointRepo persistence.PointRepository,
	userPointRepo persistence.UserPointRepository,
	profileRepo persistence.UserProfileRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LeaderboardQuery {
	return &LeaderboardQuery{
		pointRepo:     pointRepo,
		userPointRepo: userPointRepo,
		profileRepo:   profileRepo,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// GetLeaderboard returns one ranked page of users for the requested window
func (q *LeaderboardQuery) GetLeaderboard(ctx context.Context, params usecase.LeaderboardParams) (*usecase.LeaderboardResult, error) {
	if params.Limit <= 0 {
		params.Limit = DefaultLeaderboardLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	if params.TimeFrame == "" {
		params.TimeFrame = usecase.TimeFrameAllTime
	}

	switch params.TimeFrame {
	case usecase.TimeFrameAllTime:
		return q.allTimeLeaderboard(ctx, params)
	case usecase.TimeFrameWeekly:
		return q.windowedLeaderboard(ctx, params, q.timeProvider.Now().AddDate(0, 0, -7))
	case usecase.TimeFrameMonthly:
		return q.windowedLeaderboard(ctx, params, q.timeProvider.Now().AddDate(0, -1, 0))
	default:
		return nil, errs.ErrInvalidTimeFrame
	}
}

// allTimeLeaderboard ranks by the materialized balance aggregate
func (q *LeaderboardQuery) allTimeLeaderboard(ctx context.Context, params usecase.LeaderboardParams) (*usecase.LeaderboardResult, error) {
	rows, err := q.userPointRepo.TopByBalance(ctx, params.Limit, params.Offset)
	if err != nil {
		q.logger.Error("Failed to read all-time leaderboard", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	total, err := q.userPointRepo.Count(ctx)
	if err != nil {
		q.logger.Error("Failed to count balance rows", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	userIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		userIDs = append(userIDs, row.UserID)
	}
	profiles, err := q.loadProfiles(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]usecase.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entry := usecase.LeaderboardEntry{
			Rank:    params.Offset + i + 1,
			UserID:  row.UserID,
			Balance: row.Balance,
			Level:   row.Level,
		}
		applyProfile(&entry, profiles[row.UserID])
		entries = append(entries, entry)
	}

	return &usecase.LeaderboardResult{
		Leaderboard: entries,
		Pagination: usecase.Pagination{
			Total:  total,
			Offset: params.Offset,
			Limit:  params.Limit,
		},
		TimeFrame: params.TimeFrame,
	}, nil
}

// windowedLeaderboard ranks by summed increment entries since the window start.
// Level is still taken from the all-time balance row: levels are defined only
// against total balance, never against a windowed sum.
func (q *LeaderboardQuery) windowedLeaderboard(ctx context.Context, params usecase.LeaderboardParams, since time.Time) (*usecase.LeaderboardResult, error) {
	sums, err := q.pointRepo.SumIncrementsSince(ctx, since, params.Limit, params.Offset)
	if err != nil {
		q.logger.Error("Failed to sum windowed points", map[string]any{
			"time_frame": string(params.TimeFrame),
			"since":      since,
			"error":      err.Error(),
		})
		return nil, err
	}

	total, err := q.pointRepo.CountEarnersSince(ctx, since)
	if err != nil {
		q.logger.Error("Failed to count windowed earners", map[string]any{
			"time_frame": string(params.TimeFrame),
			"since":      since,
			"error":      err.Error(),
		})
		return nil, err
	}

	userIDs := make([]string, 0, len(sums))
	for _, sum := range sums {
		userIDs = append(userIDs, sum.UserID)
	}

	profiles, err := q.loadProfiles(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	levels := map[string]int{}
	if len(userIDs) > 0 {
		userPoints, err := q.userPointRepo.GetByUserIDs(ctx, userIDs)
		if err != nil {
			q.logger.Error("Failed to load levels for windowed leaderboard", map[string]any{
				"error": err.Error(),
			})
			return nil, err
		}
		for _, up := range userPoints {
			levels[up.UserID] = up.Level
		}
	}

	entries := make([]usecase.LeaderboardEntry, 0, len(sums))
	for i, sum := range sums {
		entry := usecase.LeaderboardEntry{
			Rank:    params.Offset + i + 1,
			UserID:  sum.UserID,
			Balance: sum.Total,
			Level:   1,
		}
		if level, ok := levels[sum.UserID]; ok {
			entry.Level = level
		}
		applyProfile(&entry, profiles[sum.UserID])
		entries = append(entries, entry)
	}

	return &usecase.LeaderboardResult{
		Leaderboard: entries,
		Pagination: usecase.Pagination{
			Total:  total,
			Offset: params.Offset,
			Limit:  params.Limit,
		},
		TimeFrame: params.TimeFrame,
	}, nil
}

func (q *LeaderboardQuery) loadProfiles(ctx context.Context, userIDs []string) (map[string]*entity.UserProfile, error) {
	profiles := map[string]*entity.UserProfile{}
	if len(userIDs) == 0 {
		return profiles, nil
	}

	rows, err := q.profileRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		q.logger.Error("Failed to load user profiles", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	for _, profile := range rows {
		profiles[profile.UserID] = profile
	}
	return profiles, nil
}

// applyProfile copies display metadata into an entry; a missing profile leaves
// the display fields empty, matching the read contract
func applyProfile(entry *usecase.LeaderboardEntry, profile *entity.UserProfile) {
	if profile == nil {
		return
	}
	entry.TagName = profile.TagName
	entry.DisplayName = profile.DisplayName
	entry.ProfilePictureURL = profile.ProfilePictureURL
}
