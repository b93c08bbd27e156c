package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
	"github.com/socialfi-labs/points-engine/internal/domain/port/persistence"
	"github.com/socialfi-labs/points-engine/internal/infrastructure/adapter/model"
)

// PointRepository implements persistence.PointRepository using GORM
type PointRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPointRepository creates a new PointRepository instance
func NewPointRepository(db *gorm.DB, logger coreport.Logger) *PointRepository {
	return &PointRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling for ledger operations
func (r *PointRepository) handleDatabaseError(operation string, err error, userID string) error {
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

// Create appends a ledger entry
func (r *PointRepository) Create(ctx context.Context, point *entity.PointTransaction) error {
	pointModel := pointEntityToModel(point)

	result := r.db.WithContext(ctx).Create(pointModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating point transaction", result.Error, point.UserID)
	}

	return nil
}

// ListByUser returns a page of one user's entries, newest first
func (r *PointRepository) ListByUser(ctx context.Context, filter persistence.HistoryFilter) ([]*entity.PointTransaction, error) {
	var pointModels []model.Point

	query := r.applyHistoryFilter(r.db.WithContext(ctx), filter).
		Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	if err := query.Find(&pointModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing point history", err, filter.UserID)
	}

	points := make([]*entity.PointTransaction, 0, len(pointModels))
	for i := range pointModels {
		points = append(points, pointModelToEntity(&pointModels[i]))
	}
	return points, nil
}

// CountByUser returns the total number of entries matching the filter
func (r *PointRepository) CountByUser(ctx context.Context, filter persistence.HistoryFilter) (int64, error) {
	var count int64

	query := r.applyHistoryFilter(r.db.WithContext(ctx).Model(&model.Point{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting point history", err, filter.UserID)
	}

	return count, nil
}

// windowedSumRow receives the group-by-sum projection
type windowedSumRow struct {
	UserID string
	Total  decimal.Decimal
}

// SumIncrementsSince groups increment entries in the window by user and sums
// their amounts, ranked by the sum with user_id as deterministic tiebreak
func (r *PointRepository) SumIncrementsSince(ctx context.Context, since time.Time, limit, offset int) ([]persistence.WindowedSum, error) {
	var rows []windowedSumRow

	err := r.db.WithContext(ctx).
		Model(&model.Point{}).
		Select("user_id, SUM(amount) AS total").
		Where("created_at >= ? AND action = ?", since, string(entity.ActionIncrement)).
		Group("user_id").
		Order("total DESC, user_id ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("summing windowed points", err, "")
	}

	sums := make([]persistence.WindowedSum, 0, len(rows))
	for _, row := range rows {
		sums = append(sums, persistence.WindowedSum{
			UserID: row.UserID,
			Total:  row.Total,
		})
	}
	return sums, nil
}

// CountEarnersSince returns the number of distinct users with at least one
// increment entry in the window
func (r *PointRepository) CountEarnersSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.Point{}).
		Where("created_at >= ? AND action = ?", since, string(entity.ActionIncrement)).
		Distinct("user_id").
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting windowed earners", err, "")
	}

	return count, nil
}

func (r *PointRepository) applyHistoryFilter(query *gorm.DB, filter persistence.HistoryFilter) *gorm.DB {
	query = query.Where("user_id = ?", filter.UserID)
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	return query
}

// pointEntityToModel converts a ledger entity to its database model
func pointEntityToModel(point *entity.PointTransaction) *model.Point {
	return &model.Point{
		ID:        point.ID,
		UserID:    point.UserID,
		Amount:    point.Amount,
		Action:    string(point.Action),
		Source:    point.Source,
		Metadata:  datatypes.JSONMap(point.Metadata),
		CreatedAt: point.CreatedAt,
	}
}

// pointModelToEntity converts a database row back to the ledger entity
func pointModelToEntity(pointModel *model.Point) *entity.PointTransaction {
	return &entity.PointTransaction{
		ID:        pointModel.ID,
		UserID:    pointModel.UserID,
		Amount:    pointModel.Amount,
		Action:    entity.PointAction(pointModel.Action),
		Source:    pointModel.Source,
		Metadata:  map[string]any(pointModel.Metadata),
		CreatedAt: pointModel.CreatedAt,
	}
}
