package router

import (
	"gym_crm_backend/internal/handlers"
	"gym_crm_backend/internal/middleware"
	"gym_crm_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the authentication routes. Login and refresh are
// public; the profile route requires a valid access token.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh-token", authHandler.RefreshToken)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.GET("/me", authHandler.GetProfile)
			authRequiredRoutes.POST("/logout", authHandler.Logout)
		}
	}
}

// SetupCustomerRoutes sets up the customer routes.
func SetupCustomerRoutes(authenticatedGroup *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customerRoutes := authenticatedGroup.Group("/customers")
	{
		customerRoutes.POST("", customerHandler.CreateCustomer)
		customerRoutes.GET("", customerHandler.GetCustomers)
		customerRoutes.GET("/:id", customerHandler.GetCustomerByID)
		customerRoutes.PUT("/:id", customerHandler.UpdateCustomer)
		customerRoutes.DELETE("/:id", customerHandler.DeleteCustomer)
	}
}

// SetupPackageRoutes sets up the membership package routes. Package
// management changes pricing, so writes are limited to admin and manager.
func SetupPackageRoutes(authenticatedGroup *gin.RouterGroup, packageHandler *handlers.PackageHandler) {
	packageRoutes := authenticatedGroup.Group("/packages")
	{
		packageRoutes.GET("", packageHandler.GetPackages)
		packageRoutes.GET("/:id", packageHandler.GetPackageByID)

		packageWriteRoutes := packageRoutes.Group("")
		packageWriteRoutes.Use(middleware.RoleAuthMiddleware(models.UserRoleAdmin, models.UserRoleManager))
		{
			packageWriteRoutes.POST("", packageHandler.CreatePackage)
			packageWriteRoutes.PUT("/:id", packageHandler.UpdatePackage)
			packageWriteRoutes.DELETE("/:id", packageHandler.DeletePackage)
		}
	}
}

// SetupStaffRoutes sets up the staff roster routes. Writes are limited to
// admin and manager.
func SetupStaffRoutes(authenticatedGroup *gin.RouterGroup, staffHandler *handlers.StaffHandler) {
	staffRoutes := authenticatedGroup.Group("/staff")
	{
		staffRoutes.GET("", staffHandler.GetStaffMembers)
		staffRoutes.GET("/:id", staffHandler.GetStaffMemberByID)

		staffWriteRoutes := staffRoutes.Group("")
		staffWriteRoutes.Use(middleware.RoleAuthMiddleware(models.UserRoleAdmin, models.UserRoleManager))
		{
			staffWriteRoutes.POST("", staffHandler.CreateStaffMember)
			staffWriteRoutes.PUT("/:id", staffHandler.UpdateStaffMember)
			staffWriteRoutes.DELETE("/:id", staffHandler.DeleteStaffMember)
		}
	}
}

// SetupCheckInRoutes sets up the check-in routes.
func SetupCheckInRoutes(authenticatedGroup *gin.RouterGroup, checkInHandler *handlers.CheckInHandler) {
	checkInRoutes := authenticatedGroup.Group("/checkins")
	{
		checkInRoutes.POST("", checkInHandler.CreateCheckIn)
		checkInRoutes.GET("", checkInHandler.GetCheckIns)
	}
}

// SetupReportRoutes sets up the reporting routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	{
		reportRoutes.GET("/summary", reportHandler.GetSummary)
		reportRoutes.GET("/peak-hours", reportHandler.GetPeakHours)
		reportRoutes.GET("/top-customers", reportHandler.GetTopCustomers)
	}
}
