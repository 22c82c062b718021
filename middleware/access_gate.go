package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Paths guarded by the access gate
const (
	LoginPath     = "/admin/login"
	DashboardPath = "/admin/dashboard"
)

// AccessGate runs before routing on every request. It attaches baseline
// security headers, resolves the session, and enforces the path rules:
// unauthenticated requests under the dashboard are redirected to the login
// page, authenticated requests to the login page are redirected to the
// dashboard. Any failure to resolve an identity counts as "no identity".
func AccessGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")

		user, claims, err := resolveSession(c)
		authenticated := err == nil

		if authenticated {
			c.Set(contextUserKey, user)

			// Sliding refresh: re-issue the cookie once the token is past
			// half its lifetime, so an active admin never gets logged out
			// mid-session. Downstream handlers see the user via the context.
			if time.Until(claims.ExpiresAt.Time) < SessionDuration/2 {
				if token, genErr := GenerateSessionToken(user.ID); genErr == nil {
					SetSessionCookie(c, token)
				}
			}
		}

		path := c.Request.URL.Path
		switch {
		case strings.HasPrefix(path, DashboardPath) && !authenticated:
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
		case strings.HasPrefix(path, LoginPath) && authenticated:
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
