package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mealplan-gateway/backend/internal/metrics"
)

// Metrics records count and latency per route. Unmatched paths share one
// label so arbitrary URLs cannot grow the label set.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
