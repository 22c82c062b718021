// Command create-admin provisions an admin account directly against the
// store using the elevated service credentials. One-shot, pre-confirmed:
//
//	go run ./cmd/create-admin -email admin@example.com -password secret
package main

import (
	"flag"
	"fmt"
	"os"

	"api/config"
	"api/database"
	"api/models"
	"api/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: create-admin -email <email> -password <password>")
		os.Exit(1)
	}

	_ = godotenv.Load()
	config.LoadConfig()

	dsn := database.DSN(config.PostgresUser, config.PostgresPassword)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect database:", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		fmt.Fprintln(os.Stderr, "failed to migrate users table:", err)
		os.Exit(1)
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", *email).Count(&count)
	if count > 0 {
		fmt.Fprintln(os.Stderr, "a user with this email already exists")
		os.Exit(1)
	}

	hashed, err := utils.HashPassword(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to hash password:", err)
		os.Exit(1)
	}

	user := models.User{Email: *email, Password: hashed}
	if err := db.Create(&user).Error; err != nil {
		fmt.Fprintln(os.Stderr, "failed to create user:", err)
		os.Exit(1)
	}

	fmt.Println("User created successfully!")
	fmt.Println("User ID:", user.ID)
}
