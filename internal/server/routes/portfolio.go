package routes

import (
	"github.com/Jnyanu18/portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPortfolioRoutes configures the read-only content endpoints
func SetupPortfolioRoutes(api *gin.RouterGroup, portfolio *handlers.PortfolioHandler) {
	api.GET("/portfolio", portfolio.GetDocument)
	api.GET("/projects", portfolio.GetProjects)
	api.GET("/projects/featured", portfolio.GetFeaturedProjects)
	api.GET("/skills", portfolio.GetSkills)
	api.GET("/contact-info", portfolio.GetContactInfo)
}
