package routes

import (
	"github.com/Rajo-Lahatra/JMC/internal/adapters/http/handlers"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/http/middleware"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
	"github.com/Rajo-Lahatra/JMC/internal/config"
	"github.com/Rajo-Lahatra/JMC/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	loginLogRepo := repositories.NewLoginLogRepository(db)
	collabRepo := repositories.NewCollaboratorRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	missionRepo := repositories.NewMissionRepository(db)
	timesheetRepo := repositories.NewTimesheetRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, loginLogRepo, collabRepo, cfg)
	missionService := services.NewMissionService(missionRepo, timesheetRepo, clientRepo, collabRepo)
	timesheetService := services.NewTimesheetService(timesheetRepo, missionRepo, collabRepo)
	statsService := services.NewStatsService(missionRepo, clientRepo, collabRepo)
	importService := services.NewImportService(missionRepo)
	collabService := services.NewCollaboratorService(collabRepo)
	clientService := services.NewClientService(clientRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	missionHandler := handlers.NewMissionHandler(missionService)
	timesheetHandler := handlers.NewTimesheetHandler(timesheetService)
	statsHandler := handlers.NewStatsHandler(statsService)
	importHandler := handlers.NewImportHandler(importService)
	collabHandler := handlers.NewCollaboratorHandler(collabService)
	clientHandler := handlers.NewClientHandler(clientService)
	catalogHandler := handlers.NewCatalogHandler()
	loginLogHandler := handlers.NewLoginLogHandler(loginLogRepo)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public, rate limited)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Catalog routes (public, cacheable)
	catalogRoutes := apiV1.Group("/catalog")
	catalogRoutes.Use(middleware.CatalogCache())
	catalogRoutes.Get("/", catalogHandler.ListCategories)
	catalogRoutes.Get("/:code", catalogHandler.ListPrestations)

	// Everything below requires authentication and an actor
	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.Use(middleware.ActorMiddleware(authService))

	// Mission routes
	missionRoutes := protected.Group("/missions")
	setupMissionRoutes(missionRoutes, missionHandler, timesheetHandler, importHandler)

	// Collaborator routes
	collabRoutes := protected.Group("/collaborators")
	collabRoutes.Get("/", collabHandler.ListCollaborators)
	collabRoutes.Get("/:id", collabHandler.GetCollaborator)
	collabRoutes.Post("/", collabHandler.CreateCollaborator)
	collabRoutes.Put("/:id", collabHandler.UpdateCollaborator)
	collabRoutes.Delete("/:id", collabHandler.DeleteCollaborator)

	// Client routes
	clientRoutes := protected.Group("/clients")
	clientRoutes.Get("/", clientHandler.ListClients)
	clientRoutes.Post("/", clientHandler.CreateClient)

	// Stats routes
	statsRoutes := protected.Group("/stats")
	statsRoutes.Get("/missions-per-client", statsHandler.MissionsPerClient)
	statsRoutes.Get("/missions-per-collaborator", statsHandler.MissionsPerCollaborator)

	// Login journal (Manager grades and above)
	auditRoutes := protected.Group("/login-logs")
	auditRoutes.Use(middleware.AuditGate())
	auditRoutes.Get("/", loginLogHandler.ListLoginLogs)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (5 req/min/IP)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), middleware.NoCacheHeaders(), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupMissionRoutes configures mission, timesheet and import routes
func setupMissionRoutes(
	router fiber.Router,
	missionHandler *handlers.MissionHandler,
	timesheetHandler *handlers.TimesheetHandler,
	importHandler *handlers.ImportHandler,
) {
	// Import first so it is not swallowed by /:id (3 req/min/IP)
	router.Post("/import", middleware.ImportRateLimiter(), importHandler.ImportMissions)

	router.Get("/", missionHandler.ListMissions)
	router.Post("/", missionHandler.CreateMission)
	router.Get("/:id", missionHandler.GetMission)
	router.Put("/:id", missionHandler.UpdateMission)
	router.Delete("/:id", missionHandler.DeleteMission)
	router.Post("/:id/duplicate", missionHandler.DuplicateMission)
	router.Post("/:id/situation-email", missionHandler.SituationEmail)

	// Timesheets & valuation
	router.Post("/:id/timesheets", timesheetHandler.AddEntry)
	router.Delete("/:id/timesheets/:entryId", timesheetHandler.DeleteEntry)
	router.Get("/:id/valuation", timesheetHandler.Valuation)
}
