package handlers

import (
	"travelplanner/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger from the Gin context.
func getLogger(c *gin.Context) *zap.Logger {
	return middleware.LoggerFrom(c)
}
