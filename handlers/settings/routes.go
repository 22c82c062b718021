package settings

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to settings
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/settings", GetSettings)
	r.PUT("/settings", middleware.AuthMiddleware(), UpdateSettings)
}
