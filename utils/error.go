package utils

import (
	"net/http"

	"travelplanner/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MsgUnexpected is shown when a handler panics.
const MsgUnexpected = "Something went wrong while planning your trip. Please try again."

// APIError is the body of every JSON error the planner returns. The cause of
// the error is only ever logged.
type APIError struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func newAPIError(c *gin.Context, message string) APIError {
	return APIError{Message: message, RequestID: middleware.RequestIDFrom(c)}
}

// Recovery converts a panic into a 500 carrying MsgUnexpected and the request id.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				middleware.LoggerFrom(c).Error("Handler panicked",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, newAPIError(c, MsgUnexpected))
			}
		}()
		c.Next()
	}
}

// JSONError logs cause with the request logger and writes message to the client.
func JSONError(c *gin.Context, status int, message string, cause error) {
	middleware.LoggerFrom(c).Warn(message,
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.Error(cause),
	)
	c.JSON(status, newAPIError(c, message))
}
