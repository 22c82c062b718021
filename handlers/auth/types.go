package auth

import "api/models"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User models.User `json:"user"`
}

// Error messages
const (
	ErrInvalidCredentials = "Invalid email or password"
	ErrFailedLogin        = "Failed to process login"
)
