package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"driverp-api/config"
	"driverp-api/database"
	"driverp-api/middleware"
	"driverp-api/routes"
	"driverp-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with test data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Request logging middleware
	router.Use(middleware.RequestLogger())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Per-IP rate limiting
	router.Use(middleware.RateLimit(120, 30))

	// Recovery middleware
	router.Use(gin.Recovery())

	// Email service
	emailService := services.NewEmailService(cfg)

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Start server
	log.Printf("Starting Drive RP API server on port %s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
