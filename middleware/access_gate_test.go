package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"api/config"
	"api/database"
	"api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.JWTSecret = "test-secret"
}

// setupGate opens an in-memory store with one admin user and returns a
// router guarded by the access gate
func setupGate(t *testing.T) (*gin.Engine, models.User) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	database.Service = database.ServiceStore{DB: db}

	user := models.User{Email: "admin@example.com", Password: "irrelevant"}
	if err := database.Service.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	r := gin.New()
	r.Use(AccessGate())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET(LoginPath, ok)
	r.GET(DashboardPath, ok)
	r.GET("/", ok)
	r.GET("/api/v1/participants", ok)

	return r, user
}

func sessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	token, err := GenerateSessionToken(userID)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

// expiringSessionCookie signs a session cookie expiring after ttl instead of
// the full SessionDuration
func expiringSessionCookie(t *testing.T, userID string, ttl time.Duration) *http.Cookie {
	t.Helper()
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWTSecret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

func setCookieValue(t *testing.T, h http.Header, name string) (string, bool) {
	t.Helper()
	res := http.Response{Header: h}
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie.Value, true
		}
	}
	return "", false
}

func TestAccessGate_DashboardWithoutSessionRedirectsToLogin(t *testing.T) {
	r, _ := setupGate(t)

	req := httptest.NewRequest("GET", DashboardPath, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != LoginPath {
		t.Errorf("Expected redirect to %s, got %s", LoginPath, loc)
	}
}

func TestAccessGate_DashboardWithGarbageCookieRedirectsToLogin(t *testing.T) {
	r, _ := setupGate(t)

	req := httptest.NewRequest("GET", DashboardPath, nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-jwt"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != LoginPath {
		t.Errorf("Expected redirect to %s, got %s", LoginPath, loc)
	}
}

func TestAccessGate_LoginWithSessionRedirectsToDashboard(t *testing.T) {
	r, user := setupGate(t)

	req := httptest.NewRequest("GET", LoginPath, nil)
	req.AddCookie(sessionCookie(t, user.ID))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != DashboardPath {
		t.Errorf("Expected redirect to %s, got %s", DashboardPath, loc)
	}
}

func TestAccessGate_PassThroughAddsSecurityHeaders(t *testing.T) {
	r, _ := setupGate(t)

	paths := []string{"/", "/api/v1/participants", LoginPath}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", w.Code)
			}
			if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
				t.Errorf("Expected X-Frame-Options DENY, got %q", got)
			}
			if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
				t.Errorf("Expected X-Content-Type-Options nosniff, got %q", got)
			}
		})
	}
}

func TestAccessGate_DashboardWithSessionPassesThrough(t *testing.T) {
	r, user := setupGate(t)

	req := httptest.NewRequest("GET", DashboardPath, nil)
	req.AddCookie(sessionCookie(t, user.ID))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
}

func TestAccessGate_ReissuesCookieNearExpiry(t *testing.T) {
	r, user := setupGate(t)
	r.GET("/whoami", func(c *gin.Context) {
		u, ok := c.Get(contextUserKey)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, u.(models.User).Email)
	})

	// Past half the session lifetime: the gate re-issues the cookie and the
	// handler still sees the resolved user on the context
	old := expiringSessionCookie(t, user.ID, SessionDuration/4)
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(old)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != user.Email {
		t.Errorf("Expected context user %q downstream, got %q", user.Email, w.Body.String())
	}

	fresh, ok := setCookieValue(t, w.Header(), SessionCookieName)
	if !ok || fresh == "" {
		t.Fatal("Expected a re-issued session cookie on the response")
	}
	if fresh == old.Value {
		t.Error("Expected the re-issued token to differ from the expiring one")
	}
}

func TestAccessGate_FreshSessionNotReissued(t *testing.T) {
	r, user := setupGate(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(sessionCookie(t, user.ID))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if _, ok := setCookieValue(t, w.Header(), SessionCookieName); ok {
		t.Error("Expected no cookie re-issue for a fresh session")
	}
}

func TestAuthMiddleware_RejectsWithoutSession(t *testing.T) {
	r, user := setupGate(t)
	r.POST("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest("POST", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	req = httptest.NewRequest("POST", "/protected", nil)
	req.AddCookie(sessionCookie(t, user.ID))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 with session, got %d", w.Code)
	}
}
