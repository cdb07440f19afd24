package router

import (
	"database/sql"
	"fmt"

	"gym_crm_backend/internal/config"
	"gym_crm_backend/internal/handlers"
	"gym_crm_backend/internal/middleware"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, cfg *config.Config) error {
	// Initialize Repositories
	customerRepo := repositories.NewCustomerRepository(db)
	packageRepo := repositories.NewPackageRepository(db)
	staffRepo := repositories.NewStaffRepository(db)
	checkInRepo := repositories.NewCheckInRepository(db)

	// Initialize Services
	authService, err := services.NewAuthService()
	if err != nil {
		return fmt.Errorf("failed to initialize auth service: %w", err)
	}
	customerService := services.NewCustomerService(customerRepo, packageRepo, db)
	packageService := services.NewPackageService(packageRepo, db)
	staffService := services.NewStaffService(staffRepo, db)
	checkInService := services.NewCheckInService(checkInRepo, customerRepo, cfg.ExpiringThresholdDays, db)
	reportService := services.NewReportService(checkInRepo, customerRepo, cfg.ExpiringThresholdDays, cfg.CheckInRevenueRate)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	packageHandler := handlers.NewPackageHandler(packageService)
	staffHandler := handlers.NewStaffHandler(staffService)
	checkInHandler := handlers.NewCheckInHandler(checkInService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	SetupAuthRoutes(apiV1, authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupCustomerRoutes(authenticated, customerHandler)
		SetupPackageRoutes(authenticated, packageHandler)
		SetupStaffRoutes(authenticated, staffHandler)
		SetupCheckInRoutes(authenticated, checkInHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}

	return nil
}
