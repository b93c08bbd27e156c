package dto

import (
	"time"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
	"github.com/socialfi-labs/points-engine/internal/domain/port/usecase"
)

// UserPointsResponse represents the API response for a user's points balance
type UserPointsResponse struct {
	UserID  string `json:"userId"`
	Balance string `json:"balance"`
	Level   int    `json:"level"`
}

// NewUserPointsResponse builds the balance payload. Users without a balance
// row render as balance 0 at level 1.
func NewUserPointsResponse(userID string, userPoint *entity.UserPoint) UserPointsResponse {
	if userPoint == nil {
		return UserPointsResponse{
			UserID:  userID,
			Balance: "0",
			Level:   1,
		}
	}
	return UserPointsResponse{
		UserID:  userPoint.UserID,
		Balance: userPoint.Balance.String(),
		Level:   userPoint.Level,
	}
}

// PointEntryResponse represents one ledger entry in a history page
type PointEntryResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Amount    string         `json:"amount"`
	Action    string         `json:"action"`
	Source    string         `json:"source"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}

// PaginationResponse describes the full result set behind a returned page
type PaginationResponse struct {
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// HistoryResponse represents a page of a user's point history
type HistoryResponse struct {
	History    []PointEntryResponse `json:"history"`
	Pagination PaginationResponse   `json:"pagination"`
}

// NewHistoryResponse converts a history page to its API shape
func NewHistoryResponse(result *usecase.HistoryResult) HistoryResponse {
	entries := make([]PointEntryResponse, 0, len(result.Points))
	for _, point := range result.Points {
		entries = append(entries, PointEntryResponse{
			ID:        point.ID,
			UserID:    point.UserID,
			Amount:    point.Amount.String(),
			Action:    string(point.Action),
			Source:    point.Source,
			Metadata:  point.Metadata,
			CreatedAt: point.CreatedAt,
		})
	}
	return HistoryResponse{
		History: entries,
		Pagination: PaginationResponse{
			Total:  result.Pagination.Total,
			Offset: result.Pagination.Offset,
			Limit:  result.Pagination.Limit,
		},
	}
}

// LeaderboardEntryResponse represents one ranked leaderboard row
type LeaderboardEntryResponse struct {
	Rank              int    `json:"rank"`
	UserID            string `json:"userId"`
	TagName           string `json:"tagName"`
	DisplayName       string `json:"displayName"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	Balance           string `json:"balance"`
	Level             int    `json:"level"`
}

// LeaderboardResponse represents a ranked page of users
type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntryResponse `json:"leaderboard"`
	Pagination  PaginationResponse         `json:"pagination"`
	TimeFrame   string                     `json:"timeFrame"`
}

// NewLeaderboardResponse converts a leaderboard page to its API shape
func NewLeaderboardResponse(result *usecase.LeaderboardResult) LeaderboardResponse {
	entries := make([]LeaderboardEntryResponse, 0, len(result.Leaderboard))
	for _, entry := range result.Leaderboard {
		entries = append(entries, LeaderboardEntryResponse{
			Rank:              entry.Rank,
			UserID:            entry.UserID,
			TagName:           entry.TagName,
			DisplayName:       entry.DisplayName,
			ProfilePictureURL: entry.ProfilePictureURL,
			Balance:           entry.Balance.String(),
			Level:             entry.Level,
		})
	}
	return LeaderboardResponse{
		Leaderboard: entries,
		Pagination: PaginationResponse{
			Total:  result.Pagination.Total,
			Offset: result.Pagination.Offset,
			Limit:  result.Pagination.Limit,
		},
		TimeFrame: string(result.TimeFrame),
	}
}
