package middleware

import (
	"strconv"
	"time"

	"book-curator/backend/internal/logging"
	"book-curator/backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// AccessLog logs each request through zerolog and counts it by route template.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		evt := logging.Ctx(c.Request.Context()).Info()
		if status >= 500 {
			evt = logging.Ctx(c.Request.Context()).Error()
		} else if status >= 400 {
			evt = logging.Ctx(c.Request.Context()).Warn()
		}
		evt.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("[HTTP] Request")
	}
}
