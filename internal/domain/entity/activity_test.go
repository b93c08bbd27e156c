package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointValueFor(t *testing.T) {
	t.Run("should return the configured award for every known activity", func(t *testing.T) {
		expected := map[Activity]int64{
			ActivityPostCreation:      10,
			ActivityPostLike:          2,
			ActivityPostComment:       5,
			ActivityUserFollow:        3,
			ActivityTokenSwap:         15,
			ActivityTokenLaunch:       50,
			ActivityDonation:          20,
			ActivityDailyLogin:        5,
			ActivityProfileCompletion: 25,
			ActivityReferralSignup:    100,
		}

		for activity, want := range expected {
			value, ok := PointValueFor(activity)
			assert.True(t, ok, "activity %s should be known", activity)
			assert.Equal(t, want, value, "activity %s", activity)
		}
	})

	t.Run("should report unknown activities", func(t *testing.T) {
		_, ok := PointValueFor("ACCOUNT_DELETION")
		assert.False(t, ok)
	})
}
