package points

import (
	"context"
	"errors"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
	"github.com/socialfi-labs/points-engine/internal/domain/port/persistence"
	"github.com/socialfi-labs/points-engine/internal/domain/port/usecase"
)

// Service ties the ledger writer, reward policy and read queries together into
// the single contract exposed to collaborator modules and the HTTP layer.
type Service struct {
	writer        *LedgerWriter
	rewards       *RewardService
	history       *HistoryQuery
	leaderboard   *LeaderboardQuery
	userPointRepo persistence.UserPointRepository
	logger        coreport.Logger
}

// compile-time contract check
var _ usecase.PointsUseCase = (*Service)(nil)

// NewService wires the points engine from its storage dependencies. Queries
// run against the plain repositories; only CreatePoint goes through the unit
// of work.
func NewService(
	uow persistence.UnitOfWork,
	pointRepo persistence.PointRepository,
	userPointRepo persistence.UserPointRepository,
	profileRepo persistence.UserProfileRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	writer := NewLedgerWriter(uow, timeProvider, logger)

	return &Service{
		writer:        writer,
		rewards:       NewRewardService(writer, logger),
		history:       NewHistoryQuery(pointRepo, logger),
		leaderboard:   NewLeaderboardQuery(pointRepo, userPointRepo, profileRepo, timeProvider, logger),
		userPointRepo: userPointRepo,
		logger:        logger,
	}
}

// WithMaxWriteRetries overrides the ledger writer's conflict retry budget
func (s *Service) WithMaxWriteRetries(retries int) *Service {
	s.writer.WithMaxRetries(retries)
	return s
}

// AwardPoints implements usecase.PointsUseCase
func (s *Service) AwardPoints(ctx context.Context, userID string, activity entity.Activity, metadata map[string]any) *usecase.PointResult {
	return s.rewards.AwardPoints(ctx, userID, activity, metadata)
}

// CreatePoint implements usecase.PointsUseCase
func (s *Service) CreatePoint(ctx context.Context, req usecase.CreatePointRequest) (*usecase.PointResult, error) {
	return s.writer.CreatePoint(ctx, req)
}

// GetUserPoints implements usecase.PointsUseCase
func (s *Service) GetUserPoints(ctx context.Context, userID string) (*entity.UserPoint, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	userPoint, err := s.userPointRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			s.logger.Error("Failed to get user points", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil, err
	}
	return userPoint, nil
}

// GetPointHistory implements usecase.PointsUseCase
func (s *Service) GetPointHistory(ctx context.Context, req usecase.HistoryRequest) (*usecase.HistoryResult, error) {
	return s.history.GetPointHistory(ctx, req)
}

// GetLeaderboard implements usecase.PointsUseCase
func (s *Service) GetLeaderboard(ctx context.Context, params usecase.LeaderboardParams) (*usecase.LeaderboardResult, error) {
	return s.leaderboard.GetLeaderboard(ctx, params)
}
