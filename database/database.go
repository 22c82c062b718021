package database

import (
	"fmt"
	"time"

	"api/config"
	"api/logger"
	"api/models"
	"api/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PublicStore wraps the connection opened with the read-only public role.
// Row-level policy applies: it can read participants, settings and active
// guidelines, nothing else.
type PublicStore struct {
	*gorm.DB
}

// ServiceStore wraps the connection opened with the elevated service role,
// bypassing row-level policy. Only admin mutation handlers and seed code may
// touch it; taking a ServiceStore is what marks a code path as privileged.
type ServiceStore struct {
	*gorm.DB
}

var Public PublicStore
var Service ServiceStore

var DefaultAdminPassword = "admin"

// InitDB opens both store connections, migrates the schema with the service
// credentials and seeds default records if the database is empty
func InitDB() {
	serviceDB, err := gorm.Open(postgres.Open(DSN(config.PostgresUser, config.PostgresPassword)), &gorm.Config{})
	if err != nil {
		logger.L.Fatalw("failed to connect database with service credentials", "error", err)
	}
	Service = ServiceStore{serviceDB}

	publicDB, err := gorm.Open(postgres.Open(DSN(config.PostgresPublicUser, config.PostgresPublicPassword)), &gorm.Config{})
	if err != nil {
		logger.L.Fatalw("failed to connect database with public credentials", "error", err)
	}
	Public = PublicStore{publicDB}

	err = Service.AutoMigrate(
		&models.User{},
		&models.Participant{},
		&models.Setting{},
		&models.Guideline{},
	)
	if err != nil {
		logger.L.Fatalw("failed to migrate database", "error", err)
	}

	Populate()
}

// DSN builds the Postgres connection string for the given credentials. The
// bootstrap CLI shares it so the connection format cannot drift from the
// server's.
func DSN(user, password string) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC",
		config.PostgresHost, config.PostgresPort, user, config.PostgresDB, password)
}

// Populate seeds the default admin account and the settings singleton when
// the database is empty
func Populate() {
	var countUser int64
	Service.Model(&models.User{}).Count(&countUser)
	if countUser == 0 {
		password := DefaultAdminPassword
		if config.DefaultPassword != "" {
			password = config.DefaultPassword
		}

		hashed, err := utils.HashPassword(password)
		if err != nil {
			panic(err)
		}

		user := models.User{
			Email:    config.AdminEmail,
			Password: hashed,
		}
		Service.Create(&user)
		logger.L.Infow("default admin user created", "email", user.Email)
	}

	SeedSettings(Service)
}

// SeedSettings inserts the settings row with its well-known key if missing.
// Updates always target this row in place, never a second row.
func SeedSettings(store ServiceStore) {
	var count int64
	store.Model(&models.Setting{}).Where("id = ?", models.SettingsID).Count(&count)
	if count == 0 {
		settings := models.Setting{
			ID:          models.SettingsID,
			Theme:       "AI Videography Challenge",
			Description: "Voting is live! Support your favorite creators by liking their posts on Instagram.",
			TargetDate:  time.Now().UTC().AddDate(0, 1, 0).Truncate(time.Hour),
		}
		store.Create(&settings)
		logger.L.Infow("default settings created", "theme", settings.Theme)
	}
}
