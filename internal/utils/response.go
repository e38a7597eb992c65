package utils

import (
	"net/http"

	"github.com/Jnyanu18/portfolio/internal/api/dto/common"
	"github.com/Jnyanu18/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with a message
func HandleSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(message))
}

// HandleData sends a 200 response with a raw JSON document
func HandleData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// HandleAPIError logs the underlying error server-side and returns a
// sanitized response. The triggering defect never reaches the caller,
// which keeps transport configuration and internals out of responses.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.JSON(status, common.NewErrorResponse(message))
}
