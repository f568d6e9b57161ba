package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maplewood/student-portal/internal/service"
)

// Metrics records per-request duration and count. Operational endpoints are
// excluded so scrapes and probes do not dominate the histograms.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil || isOperational(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

func isOperational(path string) bool {
	return path == "/health" || path == "/ready" || strings.HasPrefix(path, "/metrics")
}
