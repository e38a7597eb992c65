package routes

import (
	"net/http"

	"github.com/Jnyanu18/portfolio/internal/api/dto/common"
	"github.com/Jnyanu18/portfolio/internal/api/middleware"
	"github.com/Jnyanu18/portfolio/internal/logging"
	"github.com/Jnyanu18/portfolio/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, deps *Deps) {
	logger := logging.GetGlobalLogger()

	// All endpoints live under /api, throttled by the general scope.
	api := router.Group("/api",
		middleware.RateLimit(deps.Limiter, ratelimit.ScopeAPI, middleware.APIRateLimitMessage))

	SetupHealthRoutes(api, h.Health)
	SetupPortfolioRoutes(api, h.Portfolio)
	SetupContactRoutes(api, h.Contact, deps)

	// Any unmatched route gets a structured 404.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("API endpoint not found"))
	})

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, clientURL string) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(clientURL))
	router.Use(middleware.SecurityHeaders())
}
