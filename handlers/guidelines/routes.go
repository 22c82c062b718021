package guidelines

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to guidelines
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/guidelines", GetGuidelines)
	r.POST("/guidelines", middleware.AuthMiddleware(), ReplaceGuidelines)
}
