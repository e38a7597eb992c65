package routes

import (
	"github.com/Jnyanu18/portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures health check endpoints
func SetupHealthRoutes(api *gin.RouterGroup, health *handlers.HealthHandler) {
	api.GET("/health", health.Check)
}
