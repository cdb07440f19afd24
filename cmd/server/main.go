package main

import (
	"log"
	"net/http"
	"strings"

	"gym_crm_backend/internal/config"
	"gym_crm_backend/internal/database"
	"gym_crm_backend/internal/middleware"
	"gym_crm_backend/internal/router"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	utils.InitLogger()

	cfg := config.Load()
	utils.InitJWT(cfg.JWTSecret)

	database.InitDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode, cfg.DBSchemaPath)
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	engine := gin.Default()

	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(utils.GinLogger())

	// CORS configuration
	var allowedOrigins []string
	if cfg.CORSAllowedOrigins != "" {
		allowedOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	dbConn := database.GetDB()
	if err := router.Setup(engine, dbConn, cfg); err != nil {
		utils.LogError(err, "Failed to set up routes")
		log.Fatalf("Failed to set up routes: %v", err)
	}

	utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.ServerPort})
	if err := engine.Run(":" + cfg.ServerPort); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
