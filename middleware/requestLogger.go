package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and stores a child logger
// carrying it under ContextKeyLogger. One line is logged per request.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		logger := base.With(zap.String("request_id", rid))

		c.Set(ContextKeyRequestID, rid)
		c.Set(ContextKeyLogger, logger)
		c.Header(requestIDHeader, rid)

		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// LoggerFrom returns the request-scoped logger, or the global one outside a request.
func LoggerFrom(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(ContextKeyLogger); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}

// RequestIDFrom returns the request id if RequestLogger ran.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
