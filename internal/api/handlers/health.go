package handlers

import (
	"net/http"

	"github.com/Jnyanu18/portfolio/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check always reports healthy; the API serves static content and has
// no hard dependency to probe.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.HealthResponse{
		Status:  "OK",
		Message: "Portfolio API is running",
	})
}
