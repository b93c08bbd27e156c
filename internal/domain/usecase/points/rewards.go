package points

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
	"github.com/socialfi-labs/points-engine/internal/domain/port/usecase"
)

// LedgerAppender is the slice of the write path the reward policy needs
type LedgerAppender interface {
	CreatePoint(ctx context.Context, req usecase.CreatePointRequest) (*usecase.PointResult, error)
}

// RewardService translates application activities into point awards. Rewarding
// is a best-effort side channel: a like, comment or swap must succeed even if
// its award fails, so every failure here is logged and swallowed.
type RewardService struct {
	writer LedgerAppender
	logger coreport.Logger
}

// NewRewardService creates a reward service delegating to the given writer
func NewRewardService(writer LedgerAppender, logger coreport.Logger) *RewardService {
	return &RewardService{
		writer: writer,
		logger: logger,
	}
}

// AwardPoints resolves the point value for an activity and appends an
// increment ledger entry. Missing user ids, unknown activities and storage
// failures all yield nil, never an error.
func (s *RewardService) AwardPoints(
	ctx context.Context,
	userID string,
	activity entity.Activity,
	metadata map[string]any,
) *usecase.PointResult {
	if userID == "" {
		s.logger.Warn("Cannot award points: no user ID provided", map[string]any{
			"activity": string(activity),
		})
		return nil
	}

	pointValue, ok := entity.PointValueFor(activity)
	if !ok {
		s.logger.Warn("Cannot award points: unknown activity type", map[string]any{
			"user_id":  userID,
			"activity": string(activity),
		})
		return nil
	}

	if metadata == nil {
		metadata = map[string]any{}
	}

	result, err := s.writer.CreatePoint(ctx, usecase.CreatePointRequest{
		UserID:   userID,
		Amount:   decimal.NewFromInt(pointValue),
		Action:   entity.ActionIncrement,
		Source:   string(activity),
		Metadata: metadata,
	})
	if err != nil {
		s.logger.Error("Failed to award points", map[string]any{
			"user_id":  userID,
			"activity": string(activity),
			"amount":   pointValue,
			"error":    err.Error(),
		})
		return nil
	}

	s.logger.Info("Points awarded", map[string]any{
		"user_id":  userID,
		"activity": string(activity),
		"amount":   pointValue,
		"balance":  result.UserPoint.Balance.String(),
		"level":    result.UserPoint.Level,
	})

	return result
}
