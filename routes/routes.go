package routes

import (
	"net/http"
	"time"

	"travelplanner/handlers"
	"travelplanner/middleware"
	"travelplanner/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options carries the settings routes need from configuration.
type Options struct {
	MaxRequestsPerMin int
	SessionTTL        time.Duration
	SecureCookies     bool
}

// RegisterPageRoutes registers the server-rendered planner page.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle, session, limit gin.HandlerFunc) {
	r.StaticFS("/static", http.FS(web.Static()))

	page := r.Group("/")
	page.Use(session)
	{
		page.GET("/", hb.PageHandler)
		page.POST("/plan", limit, hb.SubmitFormHandler)
	}
}

// RegisterPlannerRoutes registers the JSON API used by the page script.
func RegisterPlannerRoutes(r *gin.Engine, hb *handlers.HandlerBundle, session, limit gin.HandlerFunc) {
	api := r.Group("/api")
	api.Use(limit, session)
	{
		api.POST("/plan", hb.SubmitPlanHandler)
		api.GET("/plan/status", hb.PlanStatusHandler)
		api.GET("/coins", hb.SearchCoinsHandler)
		api.GET("/options", hb.OptionsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	session := middleware.Session(opts.SessionTTL, opts.SecureCookies)
	limit := middleware.RateLimitMiddleware(opts.MaxRequestsPerMin)

	RegisterPageRoutes(r, hb, session, limit)
	RegisterPlannerRoutes(r, hb, session, limit)
	RegisterHealthRoute(r, hb)
}
