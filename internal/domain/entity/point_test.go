package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	"github.com/socialfi-labs/points-engine/mocks/port/core"
)

func TestNewPointTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newTimeProvider := func() *core.MockTimeProvider {
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(fixedTime)
		return tp
	}

	t.Run("should create a valid increment entry", func(t *testing.T) {
		tp := newTimeProvider()

		point, err := NewPointTransaction(
			"user-1",
			decimal.NewFromInt(10),
			ActionIncrement,
			"POST_CREATION",
			map[string]any{"postId": "p-1"},
			tp,
		)

		assert.NoError(t, err)
		assert.NotEmpty(t, point.ID)
		assert.Equal(t, "user-1", point.UserID)
		assert.True(t, decimal.NewFromInt(10).Equal(point.Amount))
		assert.Equal(t, ActionIncrement, point.Action)
		assert.Equal(t, "POST_CREATION", point.Source)
		assert.Equal(t, "p-1", point.Metadata["postId"])
		assert.Equal(t, fixedTime, point.CreatedAt)
	})

	t.Run("should default empty action to increment", func(t *testing.T) {
		tp := newTimeProvider()

		point, err := NewPointTransaction("user-1", decimal.NewFromInt(5), "", "DAILY_LOGIN", nil, tp)

		assert.NoError(t, err)
		assert.Equal(t, ActionIncrement, point.Action)
	})

	t.Run("should default nil metadata to an empty map", func(t *testing.T) {
		tp := newTimeProvider()

		point, err := NewPointTransaction("user-1", decimal.NewFromInt(5), ActionIncrement, "DAILY_LOGIN", nil, tp)

		assert.NoError(t, err)
		assert.NotNil(t, point.Metadata)
		assert.Empty(t, point.Metadata)
	})

	t.Run("should reject empty user ID", func(t *testing.T) {
		tp := new(core.MockTimeProvider)

		point, err := NewPointTransaction("", decimal.NewFromInt(5), ActionIncrement, "DAILY_LOGIN", nil, tp)

		assert.Nil(t, point)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		tp := new(core.MockTimeProvider)

		point, err := NewPointTransaction("user-1", decimal.NewFromInt(-5), ActionIncrement, "DAILY_LOGIN", nil, tp)

		assert.Nil(t, point)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("should reject unknown action", func(t *testing.T) {
		tp := new(core.MockTimeProvider)

		point, err := NewPointTransaction("user-1", decimal.NewFromInt(5), "transfer", "DAILY_LOGIN", nil, tp)

		assert.Nil(t, point)
		assert.ErrorIs(t, err, errs.ErrInvalidAction)
	})

	t.Run("should generate unique IDs per entry", func(t *testing.T) {
		tp := newTimeProvider()

		first, err := NewPointTransaction("user-1", decimal.NewFromInt(5), ActionIncrement, "DAILY_LOGIN", nil, tp)
		assert.NoError(t, err)
		second, err := NewPointTransaction("user-1", decimal.NewFromInt(5), ActionIncrement, "DAILY_LOGIN", nil, tp)
		assert.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestPointTransaction_SignedAmount(t *testing.T) {
	t.Run("should return positive amount for increments", func(t *testing.T) {
		point := &PointTransaction{Amount: decimal.NewFromInt(10), Action: ActionIncrement}

		assert.True(t, decimal.NewFromInt(10).Equal(point.SignedAmount()))
		assert.True(t, point.IsCredit())
	})

	t.Run("should return negated amount for decrements", func(t *testing.T) {
		point := &PointTransaction{Amount: decimal.NewFromInt(10), Action: ActionDecrement}

		assert.True(t, decimal.NewFromInt(-10).Equal(point.SignedAmount()))
		assert.False(t, point.IsCredit())
	})
}

func TestParseAmount(t *testing.T) {
	t.Run("should accept decimal strings exactly", func(t *testing.T) {
		amount, err := ParseAmount("10.5")

		assert.NoError(t, err)
		assert.Equal(t, "10.5", amount.String())
	})

	t.Run("should accept integers", func(t *testing.T) {
		amount, err := ParseAmount(15)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(15).Equal(amount))
	})

	t.Run("should pass through decimals unchanged", func(t *testing.T) {
		in := decimal.NewFromInt(42)
		amount, err := ParseAmount(in)

		assert.NoError(t, err)
		assert.True(t, in.Equal(amount))
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		_, err := ParseAmount("ten")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reject unsupported types", func(t *testing.T) {
		_, err := ParseAmount(struct{}{})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
