package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	"github.com/socialfi-labs/points-engine/mocks/port/core"
)

func TestNewUserPoint(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create an aggregate from the first delta", func(t *testing.T) {
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(fixedTime)

		userPoint, err := NewUserPoint("user-1", decimal.NewFromInt(10), tp)

		assert.NoError(t, err)
		assert.Equal(t, "user-1", userPoint.UserID)
		assert.True(t, decimal.NewFromInt(10).Equal(userPoint.Balance))
		assert.Equal(t, 1, userPoint.Level)
		assert.Equal(t, fixedTime, userPoint.CreatedAt)
		assert.Equal(t, fixedTime, userPoint.UpdatedAt)
	})

	t.Run("should reject empty user ID", func(t *testing.T) {
		tp := new(core.MockTimeProvider)

		userPoint, err := NewUserPoint("", decimal.NewFromInt(10), tp)

		assert.Nil(t, userPoint)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestUserPoint_ApplyDelta(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	laterTime := fixedTime.Add(time.Hour)

	t.Run("should add a positive delta and rederive the level", func(t *testing.T) {
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(laterTime)

		userPoint := &UserPoint{
			UserID:    "user-1",
			Balance:   decimal.NewFromInt(98),
			Level:     1,
			CreatedAt: fixedTime,
			UpdatedAt: fixedTime,
		}

		userPoint.ApplyDelta(decimal.NewFromInt(5), tp)

		assert.True(t, decimal.NewFromInt(103).Equal(userPoint.Balance))
		assert.Equal(t, 2, userPoint.Level)
		assert.Equal(t, laterTime, userPoint.UpdatedAt)
		assert.Equal(t, fixedTime, userPoint.CreatedAt)
	})

	t.Run("should subtract a negative delta and drop the level", func(t *testing.T) {
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(laterTime)

		userPoint := &UserPoint{
			UserID:  "user-1",
			Balance: decimal.NewFromInt(500),
			Level:   3,
		}

		userPoint.ApplyDelta(decimal.NewFromInt(-450), tp)

		assert.True(t, decimal.NewFromInt(50).Equal(userPoint.Balance))
		assert.Equal(t, 1, userPoint.Level)
	})

	t.Run("should allow the balance to go negative", func(t *testing.T) {
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(laterTime)

		userPoint := &UserPoint{
			UserID:  "user-1",
			Balance: decimal.NewFromInt(10),
			Level:   1,
		}

		userPoint.ApplyDelta(decimal.NewFromInt(-25), tp)

		assert.True(t, decimal.NewFromInt(-15).Equal(userPoint.Balance))
		assert.Equal(t, 1, userPoint.Level)
	})
}
