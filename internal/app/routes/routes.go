package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/devang/placeport/internal/app/controllers"
	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	companyController *controllers.CompanyController,
	experienceController *controllers.ExperienceController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/request-otp", authController.RequestCode)
		auth.POST("/verify-otp", authController.VerifyCode)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// --- Authenticated routes ---
	// Everything past this point requires a valid token on a verified account.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.Authenticate())

	staffOnly := authMiddleware.RequireRoles(models.RoleCoordinator, models.RoleAdmin)
	adminOnly := authMiddleware.RequireRoles(models.RoleAdmin)

	users := authenticated.Group("/users")
	{
		users.GET("", staffOnly, userController.ListUsers)
		users.GET("/:id", userController.GetUser) // self-access is checked in the service

		users.PATCH("/:id/verify", staffOnly, userController.VerifyUser)
		users.PATCH("/:id/company", staffOnly, userController.AssignCompany)
		// Students may set their own location; the handler checks ownership.
		users.PATCH("/:id/location", userController.AssignLocation)

		users.PATCH("/:id/role", adminOnly, userController.ChangeRole)
		users.DELETE("/:id", staffOnly, userController.DeleteUser)
	}

	companies := authenticated.Group("/companies")
	{
		companies.GET("", companyController.ListCompanies)
		companies.GET("/:id", companyController.GetCompany)

		companies.POST("", staffOnly, companyController.CreateCompany)
		companies.PUT("/:id", staffOnly, companyController.UpdateCompany)
		companies.DELETE("/:id", staffOnly, companyController.DeleteCompany)
	}

	experiences := authenticated.Group("/experiences")
	{
		experiences.GET("", experienceController.ListExperiences)
		experiences.GET("/:id", experienceController.GetExperience)
		experiences.POST("", experienceController.CreateExperience)
		experiences.DELETE("/:id", experienceController.DeleteExperience)
	}

	stats := authenticated.Group("/stats")
	{
		stats.GET("/placements", statsController.PlacementStats)
		stats.GET("/companies", statsController.CompanyStats)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
