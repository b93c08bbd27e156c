package points

import (
	"context"

	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
	"github.com/socialfi-labs/points-engine/internal/domain/port/persistence"
	"github.com/socialfi-labs/points-engine/internal/domain/port/usecase"
)

// DefaultHistoryLimit is the page size used when the caller does not set one
const DefaultHistoryLimit = 20

// HistoryQuery reads paginated slices of one user's ledger history
type HistoryQuery struct {
	pointRepo persistence.PointRepository
	logger    coreport.Logger
}

// NewHistoryQuery creates a history query over the given ledger repository
func NewHistoryQuery(pointRepo persistence.PointRepository, logger coreport.Logger) *HistoryQuery {
	return &HistoryQuery{
		pointRepo: pointRepo,
		logger:    logger,
	}
}

// GetPointHistory returns one page of a user's ledger entries ordered newest
// first, plus the total count under the same filter. A user with no entries
// yields an empty page with total 0, not an error.
func (q *HistoryQuery) GetPointHistory(ctx context.Context, req usecase.HistoryRequest) (*usecase.HistoryResult, error) {
	if req.UserID == "" {
		return nil, errs.ErrInvalidUserID
	}

	if req.Limit <= 0 {
		req.Limit = DefaultHistoryLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	filter := persistence.HistoryFilter{
		UserID:    req.UserID,
		Source:    req.Source,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}

	entries, err := q.pointRepo.ListByUser(ctx, filter)
	if err != nil {
		q.logger.Error("Failed to list point history", map[string]any{
			"user_id": req.UserID,
			"source":  req.Source,
			"error":   err.Error(),
		})
		return nil, err
	}

	total, err := q.pointRepo.CountByUser(ctx, filter)
	if err != nil {
		q.logger.Error("Failed to count point history", map[string]any{
			"user_id": req.UserID,
			"source":  req.Source,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &usecase.HistoryResult{
		Points: entries,
		Pagination: usecase.Pagination{
			Total:  total,
			Offset: req.Offset,
			Limit:  req.Limit,
		},
	}, nil
}
