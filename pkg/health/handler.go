package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// LivenessHandler answers 200 while the process is running.
func LivenessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": StatusUp})
	}
}

// ReadinessHandler answers 503 only when a required dependency is down.
// A degraded registry still reports 200 so webhooks keep flowing.
func ReadinessHandler(registry *Registry, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		response := registry.CheckAll(ctx)

		status := http.StatusOK
		if response.Status == StatusDown {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, response)
	}
}
