package main

import (
	"context"

	"api/config"
	"api/database"
	_ "api/docs"
	"api/handlers/pages"
	"api/handlers/participants"
	"api/logger"
	"api/middleware"
	"api/routes/v1"
	"api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Leaderboard API
// @version 1.0
// @description Competition leaderboard and voting site API
// @BasePath /api/v1
func main() {
	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()
	config.LoadConfig()

	if err := logger.InitLogger(); err != nil {
		panic(err)
	}

	database.InitDB()

	storage, err := services.NewStorageService(context.Background())
	if err != nil {
		logger.L.Warnw("object storage unavailable, thumbnail uploads disabled", "error", err)
	} else {
		participants.Storage = storage
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	// The access gate runs on every request: security headers, session
	// refresh, and the admin path redirects
	r.Use(middleware.AccessGate())

	pages.RegisterRoutes(r)
	v1.Register(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	middleware.UpdateSystemMetrics()

	logger.L.Infow("server starting", "port", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		logger.L.Fatalw("server stopped", "error", err)
	}
}
