package handlers

import (
	"net/http"

	"travelplanner/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency snapshot. loaded tells whether
// the coin directory has been fetched yet; it is informational only.
func HealthHandler(loaded func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := utils.GetHealthStatus()
		code := http.StatusOK
		status := "ok"
		if !snapshot.Healthy() {
			code = http.StatusServiceUnavailable
			status = "degraded"
		}
		c.JSON(code, gin.H{
			"status":              status,
			"checks":              snapshot.Checks,
			"checkedAt":           snapshot.CheckedAt,
			"coinDirectoryLoaded": loaded != nil && loaded(),
		})
	}
}
