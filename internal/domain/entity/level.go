package entity

import "github.com/shopspring/decimal"

// MaxLevel is the highest tier a user can reach
const MaxLevel = 10

// levelThresholds holds the exclusive upper balance bound for each level below
// MaxLevel: a balance below thresholds[i] maps to level i+1.
var levelThresholds = []int64{100, 500, 1000, 2500, 5000, 10000, 25000, 50000, 100000}

// CalculateLevel maps a balance to a level in [1,10] using fixed ascending
// thresholds. It is pure and total: any balance, including a negative one,
// yields a level (negatives map to 1).
func CalculateLevel(balance decimal.Decimal) int {
	for i, threshold := range levelThresholds {
		if balance.LessThan(decimal.NewFromInt(threshold)) {
			return i + 1
		}
	}
	return MaxLevel
}

// CalculateLevelFromString parses a numeric string balance before deriving the
// level. Unparseable input maps to level 1.
func CalculateLevelFromString(balance string) int {
	d, err := decimal.NewFromString(balance)
	if err != nil {
		return 1
	}
	return CalculateLevel(d)
}
