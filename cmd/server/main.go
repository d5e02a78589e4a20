package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/http/middleware"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/http/routes"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/config"
	"github.com/Rajo-Lahatra/JMC/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "github.com/Rajo-Lahatra/JMC/docs" // Swagger docs
)

// @title JMC Missions API
// @version 1.0
// @description Mission and case tracking API for the JMC firm

// @contact.name API Support
// @contact.email support@jmc-conseils.gn

// @host missions.jmc-conseils.gn
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}
	log.Println("database migration completed")

	// Seed the INTERNE client and optional admin account
	if err := config.SeedDatabase(db); err != nil {
		log.Printf("warning: failed to seed database: %v", err)
	}

	// Start cron service (due-date scan 08:30, token purge 02:00)
	cronService := services.NewCronService(db)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "JMC Missions API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("server starting on port %s [mode: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	log.Println("server stopped gracefully")
}
