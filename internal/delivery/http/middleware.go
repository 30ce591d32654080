package post_http

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lensfeed-post-service/internal/logger"
	"lensfeed-post-service/internal/metrics"
)

// RequestLogger logs one line per request after it completes.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("HTTP request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.String("duration", time.Since(start).String()))
	}
}

// Metrics records the request counter and latency histogram. The route
// template is used as the path label so ids do not explode cardinality.
func Metrics(provider metrics.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		provider.IncrementHTTPRequests(c.Request.Method, path, status)
		provider.RecordHTTPRequestDuration(c.Request.Method, path, time.Since(start))
	}
}
