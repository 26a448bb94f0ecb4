// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelplanner/config"
	"travelplanner/handlers"
	"travelplanner/middleware"
	"travelplanner/routes"
	"travelplanner/services/budget"
	"travelplanner/services/coingecko"
	"travelplanner/services/intelligence"
	"travelplanner/services/planner"
	"travelplanner/utils"
	"travelplanner/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	cfg := config.AppConfig
	if err := cfg.Validate(); err != nil {
		logger.Fatal("main: invalid configuration", zap.Error(err))
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Coin directory and price lookups.
	geckoClient := coingecko.NewClient(cfg.CoinGeckoBaseURL, cfg.HTTPTimeout(), logger.Named("coingecko"))
	directory := coingecko.NewDirectory(geckoClient)
	priceResolver := coingecko.NewPriceResolver(geckoClient)
	formatter := budget.NewFormatter(priceResolver)

	// Completion service.
	var httpClient *http.Client
	if timeout := cfg.HTTPTimeout(); timeout > 0 {
		httpClient = &http.Client{Timeout: timeout}
	}
	gemini, err := intelligence.NewGeminiClient(rootCtx, cfg.APIKey, cfg.GeminiModel, cfg.GeminiBaseURL, httpClient)
	if err != nil {
		logger.Fatal("main: failed to initialize completion client", zap.Error(err))
	}
	itineraries := intelligence.NewItineraryService(gemini, logger.Named("itinerary"))

	// Submission state.
	checks := map[string]utils.HealthCheck{}
	var store planner.StateStore
	switch cfg.SessionStore {
	case "redis":
		client := utils.GetSessionCacheClient()
		store = planner.NewRedisStore(client, cfg.SessionTTL())
		checks["session_store"] = utils.RedisHealthCheck(client)
	default:
		store = planner.NewMemoryStore(cfg.SessionTTL())
	}
	plannerService := planner.NewService(store, formatter, itineraries, directory, logger.Named("planner"))
	utils.StartHealthMonitor(rootCtx, 30*time.Second, checks)

	plannerHandler := handlers.NewPlannerHandler(plannerService)
	coinHandler := handlers.NewCoinHandler(directory)

	handlerBundle := &handlers.HandlerBundle{
		PageHandler:       plannerHandler.PageHandler,
		SubmitFormHandler: plannerHandler.SubmitFormHandler,

		SubmitPlanHandler:  plannerHandler.SubmitPlanHandler,
		PlanStatusHandler:  plannerHandler.PlanStatusHandler,
		SearchCoinsHandler: coinHandler.SearchCoinsHandler,
		OptionsHandler:     plannerHandler.OptionsHandler,

		HealthHandler: handlers.HealthHandler(directory.Loaded),
	}

	tmpl, err := web.Templates()
	if err != nil {
		logger.Fatal("main: failed to parse templates", zap.Error(err))
	}

	// Create the Gin router.
	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(gin.Recovery())
	router.Use(utils.Recovery())
	router.Use(middleware.RequestLogger(logger))

	routes.RegisterRoutes(router, handlerBundle, routes.Options{
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,
		SessionTTL:        cfg.SessionTTL(),
		SecureCookies:     config.IsProduction(),
	})

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
