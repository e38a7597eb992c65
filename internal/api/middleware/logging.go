package middleware

import (
	"time"

	"github.com/Jnyanu18/portfolio/internal/logging"
	"github.com/Jnyanu18/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every completed request through the application
// logger.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			latency.String(),
		)
	}
}
