package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"employee-management/internal/models"
)

// RequestIDHeader carries the request correlation id. Inbound values are
// honored so callers can trace requests end to end.
const RequestIDHeader = "X-Request-Id"

// requestIDKey is the gin context key the request id is stored under.
const requestIDKey = "request_id"

// RequestID tags every request with a correlation id and echoes it back in
// the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger writes one structured line per request after it finishes.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.LogAttrs(c.Request.Context(), slog.LevelInfo,
			c.Request.Method+" "+c.Request.URL.Path,
			slog.String("request_id", c.GetString(requestIDKey)),
			slog.String("from", c.ClientIP()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("dur", time.Since(start)),
		)
	}
}

// Recovery converts a panicking handler into the standard 500 envelope plus
// a structured error log. Business failures never reach here; handlers treat
// lookup and validation outcomes as ordinary return values.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if v := recover(); v != nil {
				logger.LogAttrs(c.Request.Context(), slog.LevelError, "panic recovered",
					slog.String("request_id", c.GetString(requestIDKey)),
					slog.Any("recovered", v),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					models.NewResponse(http.StatusInternalServerError, nil, "Internal server error"))
			}
		}()
		c.Next()
	}
}

// Metrics records a request counter and a latency histogram per route
// pattern and status into set, for the /metrics endpoint to expose.
func Metrics(set *metrics.Set) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		labels := fmt.Sprintf(`{method=%q,path=%q,status="%d"}`, c.Request.Method, path, c.Writer.Status())
		set.GetOrCreateCounter("http_requests_total" + labels).Inc()
		set.GetOrCreateHistogram("http_request_duration_seconds" + labels).UpdateDuration(start)
	}
}
