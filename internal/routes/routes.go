// Package routes defines the API routing configuration.
// It wires repositories into services, services into handlers, and applies
// the auth and role middleware per route group.
package routes

import (
	"mabportal/internal/handlers"
	"mabportal/internal/middleware"
	"mabportal/internal/models"
	"mabportal/internal/repositories"
	"mabportal/internal/services/auth"
	"mabportal/internal/services/catalog"
	"mabportal/internal/services/partner"
	"mabportal/internal/services/rate"
	"mabportal/internal/services/report"
	"mabportal/internal/services/transaction"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by role and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	serviceRepo := repositories.NewServiceRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	// Services
	authService := auth.NewService(userRepo)
	rateResolver := rate.NewResolver(serviceRepo, settingRepo, repositories.CacheService)
	transactionService := transaction.NewService(transactionRepo, rateResolver)
	catalogService := catalog.NewService(serviceRepo, transactionRepo, repositories.CacheService)
	partnerService := partner.NewService(userRepo, settingRepo, repositories.CacheService)
	reportService := report.NewService(transactionRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, rateResolver)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	partnerHandler := handlers.NewPartnerHandler(partnerService)
	reportHandler := handlers.NewReportHandler(reportService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.RefreshToken)

	// Protected routes with auth middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", authHandler.ChangePassword)

	// Partner routes
	protected.Get("/services", middleware.HasPermission(models.PermissionCatalogRead), transactionHandler.VisibleServices)
	protected.Post("/transactions", middleware.HasPermission(models.PermissionCreateSale), transactionHandler.CreateSale)
	protected.Get("/transactions", middleware.HasPermission(models.PermissionTransactionRead), transactionHandler.ListOwn)
	protected.Get("/transactions/:id", middleware.HasPermission(models.PermissionTransactionRead), transactionHandler.GetTransaction)
	protected.Get("/dashboard", reportHandler.PartnerDashboard)

	// Admin routes
	admin := protected.Group("/admin", middleware.AdminRequired)

	admin.Get("/dashboard", reportHandler.AdminDashboard)

	admin.Get("/transactions", transactionHandler.ListAll)
	admin.Post("/transactions/:id/decision", middleware.HasPermission(models.PermissionDecideSale), transactionHandler.Decide)

	admin.Get("/services", catalogHandler.ListServices)
	admin.Post("/services", middleware.HasPermission(models.PermissionManageServices), catalogHandler.CreateService)
	admin.Put("/services/:id", middleware.HasPermission(models.PermissionManageServices), catalogHandler.UpdateService)
	admin.Patch("/services/:id/toggle", middleware.HasPermission(models.PermissionManageServices), catalogHandler.ToggleService)
	admin.Delete("/services/:id", middleware.HasPermission(models.PermissionManageServices), catalogHandler.DeleteService)

	admin.Get("/partners", partnerHandler.ListPartners)
	admin.Post("/partners", middleware.HasPermission(models.PermissionManagePartners), partnerHandler.CreatePartner)
	admin.Get("/partners/:id/settings", partnerHandler.GetSettings)
	admin.Put("/partners/:id/settings", middleware.HasPermission(models.PermissionManagePartners), partnerHandler.ReplaceSettings)

	admin.Get("/reports", reportHandler.Monthly)
	admin.Get("/reports/export", reportHandler.Export)
}
