package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripwise/handlers"
)

// HandlerBundle aggregates the wired handlers for route registration.
type HandlerBundle struct {
	Planner   *handlers.PlannerHandler
	Assistant *handlers.AssistantHandler
}

// RegisterPlannerRoutes registers the workflow endpoints.
func RegisterPlannerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/v2")
	{
		api.POST("/plan-trip", hb.Planner.PlanTrip)
		api.POST("/search/flights", hb.Planner.SearchFlights)
		api.POST("/search/hotels", hb.Planner.SearchHotels)
		api.POST("/search/activities", hb.Planner.SearchActivities)
		api.POST("/search/weather", hb.Planner.CheckWeather)
	}
}

// RegisterAssistantRoutes registers the conversational endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/v2/assistant")
	{
		api.POST("/chat", hb.Assistant.Chat)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}

// RegisterMetricsRoute exposes prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// CORSMiddleware returns the configured CORS policy.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	})
}

// RegisterRoutes wires everything onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(CORSMiddleware())
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
	RegisterPlannerRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
}
