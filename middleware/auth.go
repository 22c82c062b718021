package middleware

import (
	"errors"
	"net/http"
	"time"

	"api/config"
	"api/database"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "auth_token"

// SessionDuration is the lifetime of a session token. Tokens past half their
// lifetime are transparently re-issued by the access gate.
const SessionDuration = 24 * time.Hour

const contextUserKey = "user"

var ErrNoSession = errors.New("no valid session")

// SessionClaims are the JWT claims carried by a session token
type SessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed session token for the given user
func GenerateSessionToken(userID string) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionDuration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// SetSessionCookie writes the session cookie on the response
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(SessionDuration.Seconds()), "/", "", false, true)
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// resolveSession parses the session cookie and loads the matching user.
// Every failure mode collapses into ErrNoSession so callers fail closed.
func resolveSession(c *gin.Context) (models.User, *SessionClaims, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return models.User{}, nil, ErrNoSession
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(cookie, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return models.User{}, nil, ErrNoSession
	}

	var user models.User
	if err := database.Service.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		return models.User{}, nil, ErrNoSession
	}

	return user, claims, nil
}

// AuthMiddleware aborts with 401 when the request carries no valid session.
// Applied to every admin mutation route so the data layer never has to trust
// that the caller went through the dashboard UI.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(contextUserKey); exists {
			c.Next()
			return
		}

		user, _, err := resolveSession(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// GetUserFromRequest returns the authenticated user for the request. When no
// session resolves it writes a 401 response and returns an error, so handlers
// can simply return.
func GetUserFromRequest(c *gin.Context) (models.User, error) {
	if v, exists := c.Get(contextUserKey); exists {
		if user, ok := v.(models.User); ok {
			return user, nil
		}
	}

	user, _, err := resolveSession(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "authentication required")
		return models.User{}, err
	}

	c.Set(contextUserKey, user)
	return user, nil
}
