package routes

import (
	"github.com/Jnyanu18/portfolio/internal/api/handlers"
	"github.com/Jnyanu18/portfolio/internal/api/middleware"
	"github.com/Jnyanu18/portfolio/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures the contact form endpoint.
// The contact scope is far more restrictive than the general API scope
// (5 submissions per hour per client).
func SetupContactRoutes(api *gin.RouterGroup, contact *handlers.ContactHandler, deps *Deps) {
	api.POST("/contact",
		middleware.RateLimit(deps.Limiter, ratelimit.ScopeContact, middleware.ContactRateLimitMessage),
		contact.Submit,
	)
}
