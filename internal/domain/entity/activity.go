package entity

// Activity identifies a rewardable application event
type Activity string

// Known activities
const (
	ActivityPostCreation      Activity = "POST_CREATION"
	ActivityPostLike          Activity = "POST_LIKE"
	ActivityPostComment       Activity = "POST_COMMENT"
	ActivityUserFollow        Activity = "USER_FOLLOW"
	ActivityTokenSwap         Activity = "TOKEN_SWAP"
	ActivityTokenLaunch       Activity = "TOKEN_LAUNCH"
	ActivityDonation          Activity = "DONATION"
	ActivityDailyLogin        Activity = "DAILY_LOGIN"
	ActivityProfileCompletion Activity = "PROFILE_COMPLETION"
	ActivityReferralSignup    Activity = "REFERRAL_SIGNUP"
)

// PointValues maps each activity to the points it awards
var PointValues = map[Activity]int64{
	// Social engagement
	ActivityPostCreation: 10,
	ActivityPostLike:     2,
	ActivityPostComment:  5,
	ActivityUserFollow:   3,

	// Financial activities
	ActivityTokenSwap:   15,
	ActivityTokenLaunch: 50,
	ActivityDonation:    20,

	// Daily engagement
	ActivityDailyLogin:        5,
	ActivityProfileCompletion: 25,

	// Referrals
	ActivityReferralSignup: 100,
}

// PointValueFor returns the award for an activity and whether it is known
func PointValueFor(activity Activity) (int64, bool) {
	value, ok := PointValues[activity]
	return value, ok
}
