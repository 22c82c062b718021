package auth

import (
	"net/http"
	"time"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Login authenticates an admin and sets the session cookie
// @Summary Admin login
// @Description Authenticate with email and password, receive a session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400,401 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := database.Service.Where("email = ?", req.Email).First(&user).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateSessionToken(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedLogin)
		return
	}

	now := time.Now()
	database.Service.Model(&user).Update("last_connected", &now)

	middleware.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, LoginResponse{User: user})
}

// CheckAuth returns the authenticated user for the current session
// @Summary Check session
// @Description Return the user bound to the current session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
func CheckAuth(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie
// @Summary Logout
// @Description Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
