package middleware

import (
	"net/http"

	"github.com/Jnyanu18/portfolio/internal/ratelimit"
	"github.com/Jnyanu18/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// RateLimitMessages mirror the throttling responses of the original API.
const (
	APIRateLimitMessage     = "Too many requests from this IP, please try again later."
	ContactRateLimitMessage = "Too many contact form submissions, please try again later."
)

// RateLimit applies one scope of the shared limiter to the request,
// keyed by client IP. Denial produces a plain text 429 with no
// retry-after computation.
func RateLimit(limiter *ratelimit.Limiter, scope ratelimit.Scope, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(utils.GetRealIP(c), scope) {
			c.String(http.StatusTooManyRequests, message)
			c.Abort()
			return
		}
		c.Next()
	}
}
