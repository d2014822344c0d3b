package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// PrometheusMiddleware records request latency per matched route.
// /metrics and /health are skipped.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
