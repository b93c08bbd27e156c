package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
	"github.com/socialfi-labs/points-engine/internal/infrastructure/adapter/api/handler"
	"github.com/socialfi-labs/points-engine/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	pointsHandler *handler.PointsHandler,
	leaderboardHandler *handler.LeaderboardHandler,
) {
	pointsRoutes := router.Group("/points")
	{
		// GET /points/me
		pointsRoutes.GET("/me", pointsHandler.GetMyPoints)

		// GET /points/user/:userId
		pointsRoutes.GET("/user/:userId", pointsHandler.GetUserPoints)

		// GET /points/history
		pointsRoutes.GET("/history", pointsHandler.GetPointHistory)

		// GET /points/leaderboard
		pointsRoutes.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
