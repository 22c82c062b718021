// Package testutil wires handler tests to an in-memory SQLite store so they
// exercise the real GORM code paths without a running Postgres.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/config"
	"api/database"
	"api/middleware"
	"api/models"
	"api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.JWTSecret = "test-secret"
}

// SetupTestDB opens a fresh in-memory database, migrates the schema and
// points both store handles at it
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A unique shared-cache name keeps the database alive across the pooled
	// connections GORM opens, while isolating tests from each other
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Participant{},
		&models.Setting{},
		&models.Guideline{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	database.Service = database.ServiceStore{DB: db}
	database.Public = database.PublicStore{DB: db}

	return db
}

// CreateAdmin inserts an admin user and returns it with the given password
// already hashed
func CreateAdmin(t *testing.T, email, password string) models.User {
	t.Helper()

	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{Email: email, Password: hashed}
	if err := database.Service.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create admin user: %v", err)
	}
	return user
}

// SessionCookie returns a valid session cookie for the given user
func SessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()

	token, err := middleware.GenerateSessionToken(userID)
	if err != nil {
		t.Fatalf("Failed to generate session token: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

// PerformRequest runs a JSON request against the router and records the
// response
func PerformRequest(r http.Handler, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
