package pages

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the admin pages on the engine root. The access
// gate middleware handles the login/dashboard redirects before these run.
func RegisterRoutes(r *gin.Engine) {
	r.GET(middleware.LoginPath, LoginPage)
	r.GET(middleware.DashboardPath, DashboardPage)
}
