package participants

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to participants
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	r.GET("/participants", GetParticipants)
	r.GET("/participants/ws", ParticipantsWebSocket)

	participants := r.Group("/participants")
	participants.Use(middleware.AuthMiddleware())
	{
		participants.POST("", CreateParticipant)
		participants.PUT("/:id", UpdateParticipant)
		participants.DELETE("/:id", DeleteParticipant)
		participants.POST("/thumbnail", UploadThumbnail)
	}
}
