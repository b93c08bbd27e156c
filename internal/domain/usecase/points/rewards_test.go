package points

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
	"github.com/socialfi-labs/points-engine/internal/domain/port/usecase"
	"github.com/socialfi-labs/points-engine/mocks/port/core"
)

// mockLedgerAppender stubs the write path behind the reward policy
type mockLedgerAppender struct {
	mock.Mock
}

func (m *mockLedgerAppender) CreatePoint(ctx context.Context, req usecase.CreatePointRequest) (*usecase.PointResult, error) {
	ret := m.Called(ctx, req)

	var r0 *usecase.PointResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.PointResult)
	}
	return r0, ret.Error(1)
}

func TestRewardService_AwardPoints(t *testing.T) {
	t.Run("should award the configured points for a known activity", func(t *testing.T) {
		ctx := context.Background()

		mockWriter := new(mockLedgerAppender)
		mockLogger := new(core.MockLogger)
		mockLogger.On("Info", "Points awarded", mock.Anything).Return()

		expected := &usecase.PointResult{
			Point: &entity.PointTransaction{UserID: "user-1"},
			UserPoint: &entity.UserPoint{
				UserID:  "user-1",
				Balance: decimal.NewFromInt(10),
				Level:   1,
			},
		}

		mockWriter.On("CreatePoint", ctx, mock.MatchedBy(func(req usecase.CreatePointRequest) bool {
			return req.UserID == "user-1" &&
				req.Amount.Equal(decimal.NewFromInt(10)) &&
				req.Action == entity.ActionIncrement &&
				req.Source == "POST_CREATION"
		})).Return(expected, nil)

		service := NewRewardService(mockWriter, mockLogger)

		result := service.AwardPoints(ctx, "user-1", entity.ActivityPostCreation, map[string]any{"postId": "p-1"})

		assert.Equal(t, expected, result)
		mockWriter.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should return nil without writing when user ID is empty", func(t *testing.T) {
		ctx := context.Background()

		mockWriter := new(mockLedgerAppender)
		mockLogger := new(core.MockLogger)
		mockLogger.On("Warn", "Cannot award points: no user ID provided", mock.Anything).Return()

		service := NewRewardService(mockWriter, mockLogger)

		result := service.AwardPoints(ctx, "", entity.ActivityPostLike, nil)

		assert.Nil(t, result)
		mockWriter.AssertNotCalled(t, "CreatePoint", mock.Anything, mock.Anything)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should return nil without writing for an unknown activity", func(t *testing.T) {
		ctx := context.Background()

		mockWriter := new(mockLedgerAppender)
		mockLogger := new(core.MockLogger)
		mockLogger.On("Warn", "Cannot award points: unknown activity type", mock.Anything).Return()

		service := NewRewardService(mockWriter, mockLogger)

		result := service.AwardPoints(ctx, "user-1", "ACCOUNT_DELETION", nil)

		assert.Nil(t, result)
		mockWriter.AssertNotCalled(t, "CreatePoint", mock.Anything, mock.Anything)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should swallow write failures and return nil", func(t *testing.T) {
		ctx := context.Background()

		mockWriter := new(mockLedgerAppender)
		mockLogger := new(core.MockLogger)
		mockLogger.On("Error", "Failed to award points", mock.Anything).Return()

		mockWriter.On("CreatePoint", ctx, mock.Anything).Return(nil, errors.New("database down"))

		service := NewRewardService(mockWriter, mockLogger)

		result := service.AwardPoints(ctx, "user-1", entity.ActivityTokenSwap, nil)

		assert.Nil(t, result)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should default nil metadata to an empty map on the write", func(t *testing.T) {
		ctx := context.Background()

		mockWriter := new(mockLedgerAppender)
		mockLogger := new(core.MockLogger)
		mockLogger.On("Info", "Points awarded", mock.Anything).Return()

		expected := &usecase.PointResult{
			Point: &entity.PointTransaction{UserID: "user-1"},
			UserPoint: &entity.UserPoint{
				UserID:  "user-1",
				Balance: decimal.NewFromInt(5),
				Level:   1,
			},
		}

		mockWriter.On("CreatePoint", ctx, mock.MatchedBy(func(req usecase.CreatePointRequest) bool {
			return req.Metadata != nil && len(req.Metadata) == 0
		})).Return(expected, nil)

		service := NewRewardService(mockWriter, mockLogger)

		result := service.AwardPoints(ctx, "user-1", entity.ActivityDailyLogin, nil)

		assert.NotNil(t, result)
		mockWriter.AssertExpectations(t)
	})
}
