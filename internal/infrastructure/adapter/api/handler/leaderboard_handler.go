package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/socialfi-labs/points-engine/internal/domain/error"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
	"github.com/socialfi-labs/points-engine/internal/domain/port/usecase"
	"github.com/socialfi-labs/points-engine/internal/infrastructure/adapter/api/dto"
)

// LeaderboardHandler handles leaderboard HTTP requests
type LeaderboardHandler struct {
	pointsUseCase usecase.PointsUseCase
	logger        coreport.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler instance
func NewLeaderboardHandler(
	pointsUseCase usecase.PointsUseCase,
	logger coreport.Logger,
) *LeaderboardHandler {
	return &LeaderboardHandler{
		pointsUseCase: pointsUseCase,
		logger:        logger,
	}
}

// GetLeaderboard handles the GET /points/leaderboard endpoint
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	timeFrame := usecase.TimeFrame(c.DefaultQuery("timeFrame", string(usecase.TimeFrameAllTime)))
	if !timeFrame.IsValid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidTimeFrame),
			Message: "Invalid time frame",
		})
		return
	}

	params := usecase.LeaderboardParams{
		Limit:     parseIntQuery(c, "limit", 0),
		Offset:    parseIntQuery(c, "offset", 0),
		TimeFrame: timeFrame,
	}

	result, err := h.pointsUseCase.GetLeaderboard(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, domainerr.ErrInvalidTimeFrame) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Invalid time frame",
			})
			return
		}

		h.logger.Error("Error getting leaderboard", map[string]any{
			"time_frame": string(params.TimeFrame),
			"error":      err.Error(),
		})

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewLeaderboardResponse(result))
}
