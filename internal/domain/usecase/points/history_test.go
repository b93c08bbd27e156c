package points

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	persistenceport "github.com/socialfi-labs/points-engine/internal/domain/port/persistence"
	"github.com/socialfi-labs/points-engine/internal/domain/port/usecase"
	"github.com/socialfi-labs/points-engine/mocks/port/core"
	"github.com/socialfi-labs/points-engine/mocks/port/persistence"
)

func TestHistoryQuery_GetPointHistory(t *testing.T) {
	t.Run("should return one page plus the total under the same filter", func(t *testing.T) {
		ctx := context.Background()

		mockPointRepo := new(persistence.MockPointRepository)
		mockLogger := new(core.MockLogger)

		entries := []*entity.PointTransaction{
			{ID: "p-2", UserID: "user-1", Amount: decimal.NewFromInt(5), Action: entity.ActionIncrement},
			{ID: "p-1", UserID: "user-1", Amount: decimal.NewFromInt(10), Action: entity.ActionIncrement},
		}

		expectedFilter := persistenceport.HistoryFilter{
			UserID: "user-1",
			Limit:  20,
			Offset: 0,
		}

		mockPointRepo.On("ListByUser", ctx, expectedFilter).Return(entries, nil)
		mockPointRepo.On("CountByUser", ctx, expectedFilter).Return(int64(42), nil)

		query := NewHistoryQuery(mockPointRepo, mockLogger)

		result, err := query.GetPointHistory(ctx, usecase.HistoryRequest{UserID: "user-1"})

		assert.NoError(t, err)
		assert.Len(t, result.Points, 2)
		assert.Equal(t, int64(42), result.Pagination.Total)
		assert.Equal(t, 20, result.Pagination.Limit)
		assert.Equal(t, 0, result.Pagination.Offset)
		mockPointRepo.AssertExpectations(t)
	})

	t.Run("should pass source and date bounds through to the filter", func(t *testing.T) {
		ctx := context.Background()

		mockPointRepo := new(persistence.MockPointRepository)
		mockLogger := new(core.MockLogger)

		start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		expectedFilter := persistenceport.HistoryFilter{
			UserID:    "user-1",
			Source:    "POST_LIKE",
			StartDate: &start,
			EndDate:   &end,
			Limit:     5,
			Offset:    10,
		}

		mockPointRepo.On("ListByUser", ctx, expectedFilter).Return([]*entity.PointTransaction{}, nil)
		mockPointRepo.On("CountByUser", ctx, expectedFilter).Return(int64(0), nil)

		query := NewHistoryQuery(mockPointRepo, mockLogger)

		result, err := query.GetPointHistory(ctx, usecase.HistoryRequest{
			UserID:    "user-1",
			Source:    "POST_LIKE",
			StartDate: &start,
			EndDate:   &end,
			Limit:     5,
			Offset:    10,
		})

		assert.NoError(t, err)
		assert.Empty(t, result.Points)
		assert.Equal(t, int64(0), result.Pagination.Total)
		mockPointRepo.AssertExpectations(t)
	})

	t.Run("should reject empty user ID without touching storage", func(t *testing.T) {
		ctx := context.Background()

		mockPointRepo := new(persistence.MockPointRepository)
		mockLogger := new(core.MockLogger)

		query := NewHistoryQuery(mockPointRepo, mockLogger)

		result, err := query.GetPointHistory(ctx, usecase.HistoryRequest{})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		mockPointRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	})

	t.Run("should propagate list failures", func(t *testing.T) {
		ctx := context.Background()
		dbError := errors.New("query timeout")

		mockPointRepo := new(persistence.MockPointRepository)
		mockLogger := new(core.MockLogger)
		mockLogger.On("Error", "Failed to list point history", mock.Anything).Return()

		mockPointRepo.On("ListByUser", ctx, mock.Anything).Return(nil, dbError)

		query := NewHistoryQuery(mockPointRepo, mockLogger)

		result, err := query.GetPointHistory(ctx, usecase.HistoryRequest{UserID: "user-1"})

		assert.Nil(t, result)
		assert.Equal(t, dbError, err)
		mockPointRepo.AssertNotCalled(t, "CountByUser", mock.Anything, mock.Anything)
		mockLogger.AssertExpectations(t)
	})
}
