// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Page endpoints
	PageHandler       gin.HandlerFunc
	SubmitFormHandler gin.HandlerFunc

	// Planner API endpoints
	SubmitPlanHandler  gin.HandlerFunc
	PlanStatusHandler  gin.HandlerFunc
	SearchCoinsHandler gin.HandlerFunc
	OptionsHandler     gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}
