package v1

import (
	"api/config"
	"api/handlers/auth"
	"api/handlers/guidelines"
	"api/handlers/participants"
	"api/handlers/settings"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(config.DefaultRateLimitConfig)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	participants.RegisterRoutes(v1)
	guidelines.RegisterRoutes(v1)
	settings.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
