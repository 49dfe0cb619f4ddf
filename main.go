// File: tripwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tripwise/config"
	"tripwise/handlers"
	"tripwise/middleware"
	"tripwise/monitoring"
	"tripwise/routes"
	"tripwise/services/assistant"
	"tripwise/services/intelligence"
	"tripwise/services/planner"
	"tripwise/services/providers"
	"tripwise/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitContextCache()

	// Completion service.
	llm, err := intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize completion client: %v", err)
	}

	// Search providers (mocked; no real travel APIs behind them).
	flightProvider := providers.NewMockFlightProvider()
	hotelProvider := providers.NewMockHotelProvider()
	weatherProvider := providers.NewMockWeatherProvider()
	activityProvider := providers.NewMockActivityProvider()
	ancillaryProvider := providers.NewMockAncillaryProvider()

	// Workflow core.
	metrics := monitoring.NewMetrics("tripwise")
	nodeCfg := planner.NodeConfig{
		HotelBudgetShare:    config.AppConfig.HotelBudgetShare,
		ActivityBudgetShare: config.AppConfig.ActivityBudgetShare,
		MaxFlightOptions:    config.AppConfig.MaxFlightOptions,
		MaxHotelOptions:     config.AppConfig.MaxHotelOptions,
		MaxActivityOptions:  config.AppConfig.MaxActivityOptions,
		MaxForecastDays:     config.AppConfig.MaxForecastDays,
	}
	nodes := planner.NewNodes(llm, flightProvider, hotelProvider, weatherProvider, activityProvider, nodeCfg, metrics, logger)
	graph := planner.BuildTravelGraph(nodes, config.NodeTimeout(), metrics, logger)
	plannerService := planner.NewService(graph, utils.GetCacheClient(), logger)

	// Conversational assistant on top of the workflow.
	ctxStore := assistant.NewRedisContextStore(utils.GetContextCacheClient(), 30*time.Minute)
	assistantService := assistant.NewDefaultAssistantService(plannerService, ancillaryProvider, ctxStore, logger)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Planner:   handlers.NewPlannerHandler(plannerService, logger),
		Assistant: handlers.NewAssistantHandler(assistantService, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
