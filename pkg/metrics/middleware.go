package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware records request count and latency per route template.
// Routes listed in skipRoutes (probes, the scrape endpoint) are not recorded.
func GinMiddleware(skipRoutes ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipRoutes))
	for _, r := range skipRoutes {
		skip[r] = struct{}{}
	}

	return func(c *gin.Context) {
		route := c.FullPath()
		if _, ok := skip[route]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		if route == "" {
			route = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())

		HTTPRequestDuration.WithLabelValues(route, c.Request.Method, status).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, status).Inc()
	}
}
