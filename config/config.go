package config

import "os"

// Database connection settings. The service credentials own the schema and
// bypass row-level policy; the public credentials map to the read-only
// database role granted to anonymous visitors.
var (
	PostgresHost     string
	PostgresPort     string
	PostgresDB       string
	PostgresUser     string
	PostgresPassword string

	PostgresPublicUser     string
	PostgresPublicPassword string
)

// Server settings
var (
	ServerPort string
	ClientUrl  string
	JWTSecret  string
)

// Object storage settings for thumbnail uploads
var (
	ThumbnailsBucket     string
	StoragePublicBaseUrl string
	StorageEmulatorHost  string
)

// Seed values used when the database is empty
var (
	AdminEmail      string
	DefaultPassword string
)

// LoadConfig reads the configuration from the environment. Call after the
// .env file has been loaded.
func LoadConfig() {
	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresDB = getEnv("POSTGRES_DB", "leaderboard")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresPublicUser = getEnv("POSTGRES_PUBLIC_USER", PostgresUser)
	PostgresPublicPassword = getEnv("POSTGRES_PUBLIC_PASSWORD", PostgresPassword)

	ServerPort = getEnv("SERVER_PORT", "8080")
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:3000")
	JWTSecret = getEnv("JWT_SECRET", "change-me-in-production")

	ThumbnailsBucket = getEnv("THUMBNAILS_BUCKET", "thumbnails")
	StoragePublicBaseUrl = getEnv("STORAGE_PUBLIC_BASE_URL", "")
	StorageEmulatorHost = getEnv("STORAGE_EMULATOR_HOST", "")

	AdminEmail = getEnv("ADMIN_EMAIL", "admin@admin.com")
	DefaultPassword = getEnv("DEFAULT_PASSWORD", "")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
