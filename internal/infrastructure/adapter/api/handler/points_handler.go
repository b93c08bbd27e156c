package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/socialfi-labs/points-engine/internal/domain/error"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
	"github.com/socialfi-labs/points-engine/internal/domain/port/usecase"
	"github.com/socialfi-labs/points-engine/internal/infrastructure/adapter/api/dto"
)

// userIDHeader carries the caller identity placed by the upstream gateway
const userIDHeader = "X-User-ID"

// PointsHandler handles points-related HTTP requests
type PointsHandler struct {
	pointsUseCase usecase.PointsUseCase
	logger        coreport.Logger
}

// NewPointsHandler creates a new points handler instance
func NewPointsHandler(
	pointsUseCase usecase.PointsUseCase,
	logger coreport.Logger,
) *PointsHandler {
	return &PointsHandler{
		pointsUseCase: pointsUseCase,
		logger:        logger,
	}
}

// GetMyPoints handles the GET /points/me endpoint
func (h *PointsHandler) GetMyPoints(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Missing user identity",
		})
		return
	}

	h.respondWithPoints(c, userID)
}

// GetUserPoints handles the GET /points/user/:userId endpoint
func (h *PointsHandler) GetUserPoints(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID",
		})
		return
	}

	h.respondWithPoints(c, userID)
}

// respondWithPoints renders a user's balance. Users without a balance row
// get the zero payload rather than a 404.
func (h *PointsHandler) respondWithPoints(c *gin.Context, userID string) {
	userPoint, err := h.pointsUseCase.GetUserPoints(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerr.ErrUserNotFound) {
			c.JSON(http.StatusOK, dto.NewUserPointsResponse(userID, nil))
			return
		}

		h.logger.Error("Error getting user points", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserPointsResponse(userID, userPoint))
}

// GetPointHistory handles the GET /points/history endpoint
func (h *PointsHandler) GetPointHistory(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Missing user identity",
		})
		return
	}

	req := usecase.HistoryRequest{
		UserID: userID,
		Source: c.Query("source"),
		Limit:  parseIntQuery(c, "limit", 0),
		Offset: parseIntQuery(c, "offset", 0),
	}

	startDate, ok := parseDateQuery(c, "startDate")
	if !ok {
		return
	}
	endDate, ok := parseDateQuery(c, "endDate")
	if !ok {
		return
	}
	req.StartDate = startDate
	req.EndDate = endDate

	result, err := h.pointsUseCase.GetPointHistory(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Error getting point history", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryResponse(result))
}

// parseIntQuery reads a non-negative integer query parameter, falling back
// to the default on absence or garbage
func parseIntQuery(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}

// parseDateQuery reads an RFC 3339 or YYYY-MM-DD query parameter. On a
// malformed value it writes a 400 response and reports failure.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}

	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidDate),
		Message: "Invalid " + name + " format",
	})
	return nil, false
}
