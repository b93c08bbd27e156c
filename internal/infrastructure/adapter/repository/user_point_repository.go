package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
	"github.com/socialfi-labs/points-engine/internal/infrastructure/adapter/model"
)

// UserPointRepository implements persistence.UserPointRepository using GORM
type UserPointRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserPointRepository creates a new UserPointRepository instance
func NewUserPointRepository(db *gorm.DB, logger coreport.Logger) *UserPointRepository {
	return &UserPointRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *UserPointRepository) handleDatabaseError(operation string, err error, userID string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	switch {
	case r.errorClassifier.IsConflictError(err):
		return errs.ErrConcurrentUpdate
	case r.errorClassifier.IsDuplicateKeyError(err):
		return errs.ErrConstraintViolation
	case r.errorClassifier.IsConnectionError(err):
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
}

// GetByUserID returns one user's balance aggregate. Returns ErrUserNotFound
// when no aggregate row exists yet.
func (r *UserPointRepository) GetByUserID(ctx context.Context, userID string) (*entity.UserPoint, error) {
	var userPointModel model.UserPoint

	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&userPointModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError("getting user points", err, userID)
	}

	return userPointModelToEntity(&userPointModel), nil
}

// GetByUserIDs returns the aggregates for the given users. Users without an
// aggregate row are simply absent from the result.
func (r *UserPointRepository) GetByUserIDs(ctx context.Context, userIDs []string) ([]*entity.UserPoint, error) {
	if len(userIDs) == 0 {
		return []*entity.UserPoint{}, nil
	}

	var userPointModels []model.UserPoint
	err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&userPointModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting user points batch", err, "")
	}

	userPoints := make([]*entity.UserPoint, 0, len(userPointModels))
	for i := range userPointModels {
		userPoints = append(userPoints, userPointModelToEntity(&userPointModels[i]))
	}
	return userPoints, nil
}

// Create inserts a new balance aggregate row
func (r *UserPointRepository) Create(ctx context.Context, userPoint *entity.UserPoint) error {
	userPointModel := userPointEntityToModel(userPoint)

	result := r.db.WithContext(ctx).Create(userPointModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user points", result.Error, userPoint.UserID)
	}

	return nil
}

// Update persists a modified balance aggregate
func (r *UserPointRepository) Update(ctx context.Context, userPoint *entity.UserPoint) error {
	userPointModel := userPointEntityToModel(userPoint)

	result := r.db.WithContext(ctx).
		Model(&model.UserPoint{}).
		Where("user_id = ?", userPoint.UserID).
		Updates(map[string]any{
			"balance":    userPointModel.Balance,
			"level":      userPointModel.Level,
			"updated_at": userPointModel.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating user points", result.Error, userPoint.UserID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

// TopByBalance returns a page of aggregates ordered by balance descending,
// with user_id as deterministic tiebreak
func (r *UserPointRepository) TopByBalance(ctx context.Context, limit, offset int) ([]*entity.UserPoint, error) {
	var userPointModels []model.UserPoint

	err := r.db.WithContext(ctx).
		Order("balance DESC, user_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&userPointModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing top balances", err, "")
	}

	userPoints := make([]*entity.UserPoint, 0, len(userPointModels))
	for i := range userPointModels {
		userPoints = append(userPoints, userPointModelToEntity(&userPointModels[i]))
	}
	return userPoints, nil
}

// Count returns the total number of balance aggregates
func (r *UserPointRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&model.UserPoint{}).Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting user points", err, "")
	}

	return count, nil
}

func userPointEntityToModel(userPoint *entity.UserPoint) *model.UserPoint {
	return &model.UserPoint{
		UserID:    userPoint.UserID,
		Balance:   userPoint.Balance,
		Level:     userPoint.Level,
		CreatedAt: userPoint.CreatedAt,
		UpdatedAt: userPoint.UpdatedAt,
	}
}

func userPointModelToEntity(userPointModel *model.UserPoint) *entity.UserPoint {
	return &entity.UserPoint{
		UserID:    userPointModel.UserID,
		Balance:   userPointModel.Balance,
		Level:     userPointModel.Level,
		CreatedAt: userPointModel.CreatedAt,
		UpdatedAt: userPointModel.UpdatedAt,
	}
}
