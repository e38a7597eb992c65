package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client IP from proxy headers, falling back to
// the connection address. Used consistently so the rate limiter keys on
// the same identity everywhere.
func GetRealIP(c *gin.Context) string {
	// X-Real-IP is set by reverse proxies in front of the API
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	// X-Forwarded-For can be a comma-separated list; the leftmost
	// entry is the original client
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	return c.ClientIP()
}
