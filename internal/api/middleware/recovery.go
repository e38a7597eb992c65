package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/Jnyanu18/portfolio/internal/api/dto/common"
	"github.com/Jnyanu18/portfolio/internal/logging"
	"github.com/Jnyanu18/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery is the catch-all boundary for unhandled failures. The panic
// and stack trace are logged server-side only; the caller receives a
// generic message.
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered: %v | %s %s | %s | %s\n%s",
					rec,
					c.Request.Method,
					c.Request.URL.Path,
					utils.GetRealIP(c),
					c.GetString("RequestID"),
					string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewErrorResponse("Something went wrong!"))
			}
		}()

		c.Next()
	}
}
