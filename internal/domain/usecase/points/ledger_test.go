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
	"github.com/socialfi-labs/points-engine/internal/domain/port/usecase"
	"github.com/socialfi-labs/points-engine/mocks/port/core"
	"github.com/socialfi-labs/points-engine/mocks/port/persistence"
)

func TestLedgerWriter_CreatePoint(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newTimeProvider := func() *core.MockTimeProvider {
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(fixedTime)
		return tp
	}

	newLogger := func() *core.MockLogger {
		logger := new(core.MockLogger)
		logger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()
		logger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
		logger.On("Error", mock.Anything, mock.Anything).Return().Maybe()
		return logger
	}

	validRequest := func() usecase.CreatePointRequest {
		return usecase.CreatePointRequest{
			UserID: "user-1",
			Amount: decimal.NewFromInt(5),
			Action: entity.ActionIncrement,
			Source: "DAILY_LOGIN",
		}
	}

	t.Run("should append entry and update existing aggregate atomically", func(t *testing.T) {
		ctx := context.Background()

		mockUow := new(persistence.MockUnitOfWork)
		mockPointRepo := new(persistence.MockPointRepository)
		mockUserPointRepo := new(persistence.MockUserPointRepository)
		mockTimeProvider := newTimeProvider()
		mockLogger := newLogger()

		existing := &entity.UserPoint{
			UserID:  "user-1",
			Balance: decimal.NewFromInt(98),
			Level:   1,
		}

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetPointRepository", ctx).Return(mockPointRepo)
		mockUow.On("GetUserPointRepository", ctx).Return(mockUserPointRepo)
		mockPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.PointTransaction")).Return(nil)
		mockUserPointRepo.On("GetByUserID", ctx, "user-1").Return(existing, nil)
		mockUserPointRepo.On("Update", ctx, existing).Return(nil)
		mockUow.On("Commit", ctx).Return(nil)

		writer := NewLedgerWriter(mockUow, mockTimeProvider, mockLogger)

		result, err := writer.CreatePoint(ctx, validRequest())

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "user-1", result.Point.UserID)
		assert.Equal(t, fixedTime, result.Point.CreatedAt)
		// 98 + 5 crosses the first level threshold
		assert.True(t, decimal.NewFromInt(103).Equal(result.UserPoint.Balance))
		assert.Equal(t, 2, result.UserPoint.Level)

		mockUow.AssertExpectations(t)
		mockPointRepo.AssertExpectations(t)
		mockUserPointRepo.AssertExpectations(t)
	})

	t.Run("should create the aggregate lazily on a user's first entry", func(t *testing.T) {
		ctx := context.Background()

		mockUow := new(persistence.MockUnitOfWork)
		mockPointRepo := new(persistence.MockPointRepository)
		mockUserPointRepo := new(persistence.MockUserPointRepository)
		mockTimeProvider := newTimeProvider()
		mockLogger := newLogger()

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetPointRepository", ctx).Return(mockPointRepo)
		mockUow.On("GetUserPointRepository", ctx).Return(mockUserPointRepo)
		mockPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.PointTransaction")).Return(nil)
		mockUserPointRepo.On("GetByUserID", ctx, "user-1").Return(nil, errs.ErrUserNotFound)
		mockUserPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.UserPoint")).Return(nil)
		mockUow.On("Commit", ctx).Return(nil)

		writer := NewLedgerWriter(mockUow, mockTimeProvider, mockLogger)

		result, err := writer.CreatePoint(ctx, validRequest())

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(5).Equal(result.UserPoint.Balance))
		assert.Equal(t, 1, result.UserPoint.Level)

		mockUserPointRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		mockUow.AssertExpectations(t)
	})

	t.Run("should apply decrement entries as negative deltas", func(t *testing.T) {
		ctx := context.Background()

		mockUow := new(persistence.MockUnitOfWork)
		mockPointRepo := new(persistence.MockPointRepository)
		mockUserPointRepo := new(persistence.MockUserPointRepository)
		mockTimeProvider := newTimeProvider()
		mockLogger := newLogger()

		existing := &entity.UserPoint{
			UserID:  "user-1",
			Balance: decimal.NewFromInt(100),
			Level:   2,
		}

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetPointRepository", ctx).Return(mockPointRepo)
		mockUow.On("GetUserPointRepository", ctx).Return(mockUserPointRepo)
		mockPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.PointTransaction")).Return(nil)
		mockUserPointRepo.On("GetByUserID", ctx, "user-1").Return(existing, nil)
		mockUserPointRepo.On("Update", ctx, existing).Return(nil)
		mockUow.On("Commit", ctx).Return(nil)

		writer := NewLedgerWriter(mockUow, mockTimeProvider, mockLogger)

		req := validRequest()
		req.Action = entity.ActionDecrement
		req.Amount = decimal.NewFromInt(30)

		result, err := writer.CreatePoint(ctx, req)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(70).Equal(result.UserPoint.Balance))
		assert.Equal(t, 1, result.UserPoint.Level)
	})

	t.Run("should reject invalid input without opening a transaction", func(t *testing.T) {
		ctx := context.Background()

		mockUow := new(persistence.MockUnitOfWork)
		mockTimeProvider := newTimeProvider()
		mockLogger := newLogger()

		writer := NewLedgerWriter(mockUow, mockTimeProvider, mockLogger)

		req := validRequest()
		req.Amount = decimal.NewFromInt(-5)

		result, err := writer.CreatePoint(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should retry a conflicting write and succeed", func(t *testing.T) {
		ctx := context.Background()

		mockUow := new(persistence.MockUnitOfWork)
		mockPointRepo := new(persistence.MockPointRepository)
		mockUserPointRepo := new(persistence.MockUserPointRepository)
		mockTimeProvider := newTimeProvider()
		mockTimeProvider.On("Sleep", mock.AnythingOfType("time.Duration")).Return()
		mockLogger := newLogger()

		existing := &entity.UserPoint{
			UserID:  "user-1",
			Balance: decimal.NewFromInt(10),
			Level:   1,
		}

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetPointRepository", ctx).Return(mockPointRepo)
		mockUow.On("GetUserPointRepository", ctx).Return(mockUserPointRepo)
		mockUow.On("Rollback", ctx).Return(nil)
		mockUow.On("Commit", ctx).Return(nil)

		// First attempt hits a serialization conflict, second goes through
		mockPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.PointTransaction")).
			Return(errs.ErrConcurrentUpdate).Once()
		mockPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.PointTransaction")).
			Return(nil).Once()
		mockUserPointRepo.On("GetByUserID", ctx, "user-1").Return(existing, nil)
		mockUserPointRepo.On("Update", ctx, existing).Return(nil)

		writer := NewLedgerWriter(mockUow, mockTimeProvider, mockLogger)

		result, err := writer.CreatePoint(ctx, validRequest())

		assert.NoError(t, err)
		assert.NotNil(t, result)
		mockTimeProvider.AssertNumberOfCalls(t, "Sleep", 1)
		mockPointRepo.AssertExpectations(t)
	})

	t.Run("should retry when two first writes race on the aggregate insert", func(t *testing.T) {
		ctx := context.Background()

		mockUow := new(persistence.MockUnitOfWork)
		mockPointRepo := new(persistence.MockPointRepository)
		mockUserPointRepo := new(persistence.MockUserPointRepository)
		mockTimeProvider := newTimeProvider()
		mockTimeProvider.On("Sleep", mock.AnythingOfType("time.Duration")).Return()
		mockLogger := newLogger()

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetPointRepository", ctx).Return(mockPointRepo)
		mockUow.On("GetUserPointRepository", ctx).Return(mockUserPointRepo)
		mockUow.On("Rollback", ctx).Return(nil)
		mockUow.On("Commit", ctx).Return(nil)
		mockPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.PointTransaction")).Return(nil)

		// First attempt loses the lazy-create race: the concurrent winner has
		// already committed its row, so the insert hits its primary key
		mockUserPointRepo.On("GetByUserID", ctx, "user-1").
			Return(nil, errs.ErrUserNotFound).Once()
		mockUserPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.UserPoint")).
			Return(errs.ErrConstraintViolation).Once()

		// The retry reads the winner's row and takes the update path
		winner := &entity.UserPoint{
			UserID:  "user-1",
			Balance: decimal.NewFromInt(2),
			Level:   1,
		}
		mockUserPointRepo.On("GetByUserID", ctx, "user-1").Return(winner, nil).Once()
		mockUserPointRepo.On("Update", ctx, winner).Return(nil)

		writer := NewLedgerWriter(mockUow, mockTimeProvider, mockLogger)

		req := validRequest()
		req.Amount = decimal.NewFromInt(2)
		req.Source = "POST_LIKE"

		result, err := writer.CreatePoint(ctx, req)

		assert.NoError(t, err)
		// Both concurrent awards land: 2 + 2
		assert.True(t, decimal.NewFromInt(4).Equal(result.UserPoint.Balance))
		mockTimeProvider.AssertNumberOfCalls(t, "Sleep", 1)
		mockUserPointRepo.AssertExpectations(t)
	})

	t.Run("should retry when the conflict surfaces at commit", func(t *testing.T) {
		ctx := context.Background()

		mockUow := new(persistence.MockUnitOfWork)
		mockPointRepo := new(persistence.MockPointRepository)
		mockUserPointRepo := new(persistence.MockUserPointRepository)
		mockTimeProvider := newTimeProvider()
		mockTimeProvider.On("Sleep", mock.AnythingOfType("time.Duration")).Return()
		mockLogger := newLogger()

		existing := &entity.UserPoint{
			UserID:  "user-1",
			Balance: decimal.NewFromInt(10),
			Level:   1,
		}

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetPointRepository", ctx).Return(mockPointRepo)
		mockUow.On("GetUserPointRepository", ctx).Return(mockUserPointRepo)
		mockPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.PointTransaction")).Return(nil)
		mockUserPointRepo.On("GetByUserID", ctx, "user-1").Return(existing, nil)
		mockUserPointRepo.On("Update", ctx, existing).Return(nil)

		// SERIALIZABLE can report the serialization failure only at COMMIT
		mockUow.On("Commit", ctx).Return(errs.ErrConcurrentUpdate).Once()
		mockUow.On("Commit", ctx).Return(nil).Once()

		writer := NewLedgerWriter(mockUow, mockTimeProvider, mockLogger)

		result, err := writer.CreatePoint(ctx, validRequest())

		assert.NoError(t, err)
		assert.NotNil(t, result)
		mockTimeProvider.AssertNumberOfCalls(t, "Sleep", 1)
		mockUow.AssertExpectations(t)
	})

	t.Run("should give up after exhausting the retry budget", func(t *testing.T) {
		ctx := context.Background()

		mockUow := new(persistence.MockUnitOfWork)
		mockPointRepo := new(persistence.MockPointRepository)
		mockUserPointRepo := new(persistence.MockUserPointRepository)
		mockTimeProvider := newTimeProvider()
		mockTimeProvider.On("Sleep", mock.AnythingOfType("time.Duration")).Return()
		mockLogger := newLogger()

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetPointRepository", ctx).Return(mockPointRepo)
		mockUow.On("GetUserPointRepository", ctx).Return(mockUserPointRepo)
		mockUow.On("Rollback", ctx).Return(nil)
		mockPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.PointTransaction")).
			Return(errs.ErrConcurrentUpdate)

		writer := NewLedgerWriter(mockUow, mockTimeProvider, mockLogger)

		result, err := writer.CreatePoint(ctx, validRequest())

		assert.Nil(t, result)
		assert.True(t, errs.IsConcurrentUpdateError(err))
		mockPointRepo.AssertNumberOfCalls(t, "Create", DefaultWriteRetries)
		mockUow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should wrap non-conflict storage failures without retrying", func(t *testing.T) {
		ctx := context.Background()
		dbError := errors.New("connection reset")

		mockUow := new(persistence.MockUnitOfWork)
		mockPointRepo := new(persistence.MockPointRepository)
		mockUserPointRepo := new(persistence.MockUserPointRepository)
		mockTimeProvider := newTimeProvider()
		mockLogger := newLogger()

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetPointRepository", ctx).Return(mockPointRepo)
		mockUow.On("GetUserPointRepository", ctx).Return(mockUserPointRepo)
		mockUow.On("Rollback", ctx).Return(nil)
		mockPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.PointTransaction")).Return(dbError)

		writer := NewLedgerWriter(mockUow, mockTimeProvider, mockLogger)

		result, err := writer.CreatePoint(ctx, validRequest())

		assert.Nil(t, result)
		var writeErr *errs.LedgerWriteError
		assert.ErrorAs(t, err, &writeErr)
		assert.ErrorIs(t, err, dbError)
		mockPointRepo.AssertNumberOfCalls(t, "Create", 1)
		mockTimeProvider.AssertNotCalled(t, "Sleep", mock.Anything)
	})

	t.Run("should roll back when the aggregate update fails", func(t *testing.T) {
		ctx := context.Background()
		dbError := errors.New("update failed")

		mockUow := new(persistence.MockUnitOfWork)
		mockPointRepo := new(persistence.MockPointRepository)
		mockUserPointRepo := new(persistence.MockUserPointRepository)
		mockTimeProvider := newTimeProvider()
		mockLogger := newLogger()

		existing := &entity.UserPoint{
			UserID:  "user-1",
			Balance: decimal.NewFromInt(10),
			Level:   1,
		}

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetPointRepository", ctx).Return(mockPointRepo)
		mockUow.On("GetUserPointRepository", ctx).Return(mockUserPointRepo)
		mockUow.On("Rollback", ctx).Return(nil)
		mockPointRepo.On("Create", ctx, mock.AnythingOfType("*entity.PointTransaction")).Return(nil)
		mockUserPointRepo.On("GetByUserID", ctx, "user-1").Return(existing, nil)
		mockUserPointRepo.On("Update", ctx, existing).Return(dbError)

		writer := NewLedgerWriter(mockUow, mockTimeProvider, mockLogger)

		result, err := writer.CreatePoint(ctx, validRequest())

		assert.Nil(t, result)
		assert.Error(t, err)
		mockUow.AssertCalled(t, "Rollback", ctx)
		mockUow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
