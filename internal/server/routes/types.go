package routes

import (
	"github.com/Jnyanu18/portfolio/internal/api/handlers"
	"github.com/Jnyanu18/portfolio/internal/ratelimit"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health    *handlers.HealthHandler
	Portfolio *handlers.PortfolioHandler
	Contact   *handlers.ContactHandler
}

// Deps contains the shared components routes depend on
type Deps struct {
	Limiter *ratelimit.Limiter
}
