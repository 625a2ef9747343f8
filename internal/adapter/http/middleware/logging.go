package middleware

import (
	"time"

	"insurance_portal/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger replaces gin's default logger with one structured line per
// request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if u := CurrentUser(c); u != nil {
			fields = append(fields, zap.String("user_id", u.UserID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("[http][request]", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("[http][request]", fields...)
		default:
			logger.Info("[http][request]", fields...)
		}
	}
}

// Metrics records request counts and latencies by matched route.
func Metrics(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(service, c.Request.Method, route, statusClass(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(service, c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
