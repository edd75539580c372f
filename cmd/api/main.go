package main

import (
	"context"
	"log"
	"os"

	"howdohome-api/config"
	"howdohome-api/controllers"
	"howdohome-api/middleware"
	"howdohome-api/monitor"
	"howdohome-api/routes"
	"howdohome-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize file logging
	config.InitLogging()

	// Initialize database
	config.InitDB()

	// Initialize object storage
	store, err := storage.Open(context.Background())
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}
	controllers.MediaStore = store

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add logging middleware
	router.Use(gin.Logger())

	// Add recovery middleware
	router.Use(gin.Recovery())

	// Add security headers middleware
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	// Add CORS middleware
	router.Use(middleware.CORSMiddleware())

	// Add request metrics middleware
	router.Use(monitor.RequestMetrics())

	// /healthz, /metrics
	monitor.RegisterMonitorRoutes(router)

	// Serve uploaded files directly when using the filesystem driver
	if os.Getenv("STORAGE_DRIVER") != "s3" {
		root := os.Getenv("STORAGE_FS_ROOT")
		if root == "" {
			root = "./uploads"
		}
		if err := os.MkdirAll(root, os.ModePerm); err != nil {
			log.Printf("Warning: Failed to create upload directory: %v", err)
		}
		router.Static("/uploads", root)
	}

	// Create logs directory if not exists
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create logs directory: %v", err)
	}

	// Setup routes
	routes.SetupRoutes(router)

	// Start server
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 howdohome API starting on port %s", port)
	log.Printf("📊 Database connected successfully")

	if ginMode == "release" {
		log.Printf("🏭 Running in production mode")
	} else {
		log.Printf("🔧 Running in development mode")
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}
