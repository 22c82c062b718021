package auth

import (
	"net/http"
	"testing"

	"api/middleware"
	"api/testutil"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	testutil.SetupTestDB(t)
	testutil.CreateAdmin(t, "admin@example.com", "correct-horse")

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"))
	return r
}

func sessionCookieFrom(w http.Header) *http.Cookie {
	res := http.Response{Header: w}
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	r := setupRouter(t)

	body := map[string]string{"email": "admin@example.com", "password": "correct-horse"}
	w := testutil.PerformRequest(r, "POST", "/api/v1/auth/login", body)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	cookie := sessionCookieFrom(w.Header())
	if cookie == nil || cookie.Value == "" {
		t.Fatal("Expected a session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Error("Expected the session cookie to be HttpOnly")
	}

	// The returned cookie proves authentication to the check endpoint
	w = testutil.PerformRequest(r, "GET", "/api/v1/auth/check", nil, cookie)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 from check with session, got %d", w.Code)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	r := setupRouter(t)

	testCases := []struct {
		name string
		body map[string]string
	}{
		{"WrongPassword", map[string]string{"email": "admin@example.com", "password": "wrong"}},
		{"UnknownEmail", map[string]string{"email": "nobody@example.com", "password": "correct-horse"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := testutil.PerformRequest(r, "POST", "/api/v1/auth/login", tc.body)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected status 401, got %d", w.Code)
			}
			if cookie := sessionCookieFrom(w.Header()); cookie != nil && cookie.Value != "" {
				t.Error("Expected no session cookie on failed login")
			}
		})
	}
}

func TestCheckAuth_WithoutSession(t *testing.T) {
	r := setupRouter(t)

	w := testutil.PerformRequest(r, "GET", "/api/v1/auth/check", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	r := setupRouter(t)

	w := testutil.PerformRequest(r, "POST", "/api/v1/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	cookie := sessionCookieFrom(w.Header())
	if cookie == nil {
		t.Fatal("Expected an expired session cookie on logout")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Errorf("Expected an emptied, expiring cookie, got value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}
}
