package routes

import (
	"log"

	"hospogo-backend/internal/api/handlers"
	"hospogo-backend/internal/api/middleware"
	"hospogo-backend/internal/auth"
	"hospogo-backend/internal/config"
	"hospogo-backend/internal/repository"
	"hospogo-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	hubRepo := repository.NewHubRepository(db)
	professionalRepo := repository.NewProfessionalRepository(db)
	templateRepo := repository.NewShiftTemplateRepository(db)
	shiftRepo := repository.NewShiftRepository(db)

	// Initialize services
	hubService := service.NewHubService(hubRepo, validator)
	professionalService := service.NewProfessionalService(professionalRepo, validator)
	templateService := service.NewShiftTemplateService(templateRepo, hubRepo, validator)
	shiftService := service.NewShiftService(shiftRepo, hubRepo, templateRepo, professionalRepo, validator)
	calendarService := service.NewCalendarService(hubRepo, shiftRepo, templateRepo)

	// Initialize auth service and middleware
	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTTTL())
	if err != nil {
		log.Printf("Warning: Failed to initialize auth service: %v", err)
		// Continue without auth if the secret is missing
	} else {
		authHandler = auth.NewAuthHandler(authService)
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	hubHandler := handlers.NewHubHandler(hubService)
	professionalHandler := handlers.NewProfessionalHandler(professionalService)
	templateHandler := handlers.NewShiftTemplateHandler(templateService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)

	// Health check route
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			authGroup.POST("/token", authHandler.IssueToken)
			authGroup.GET("/validate", authMiddleware.RequireAuth(), authHandler.Validate)
		}
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	// Mutating routes are restricted to hub owners; admins pass any role check
	ownerOnly := func() gin.HandlerFunc {
		if authMiddleware != nil {
			return authMiddleware.RequireRole(auth.RoleHubOwner)
		}
		return func(c *gin.Context) { c.Next() }
	}()

	{
		// Hub routes
		hubs := v1.Group("/hubs")
		{
			hubs.GET("", hubHandler.GetAllHubs)
			hubs.POST("", ownerOnly, hubHandler.CreateHub)
			hubs.GET("/:id", hubHandler.GetHub)
			hubs.PUT("/:id", ownerOnly, hubHandler.UpdateHub)
			hubs.DELETE("/:id", ownerOnly, hubHandler.DeleteHub)
			hubs.GET("/:id/shift-templates", templateHandler.GetHubShiftTemplates)
			hubs.GET("/:id/shifts", shiftHandler.GetHubShifts)
			hubs.GET("/:id/calendar/buckets", calendarHandler.GetBuckets)
		}

		// Professional routes
		professionals := v1.Group("/professionals")
		{
			professionals.GET("", professionalHandler.GetAllProfessionals)
			professionals.POST("", professionalHandler.CreateProfessional)
			professionals.GET("/:id", professionalHandler.GetProfessional)
			professionals.PUT("/:id", professionalHandler.UpdateProfessional)
			professionals.DELETE("/:id", professionalHandler.DeleteProfessional)
		}

		// Shift template routes
		templates := v1.Group("/shift-templates")
		{
			templates.POST("", ownerOnly, templateHandler.CreateShiftTemplate)
			templates.GET("/:id", templateHandler.GetShiftTemplate)
			templates.PUT("/:id", ownerOnly, templateHandler.UpdateShiftTemplate)
			templates.DELETE("/:id", ownerOnly, templateHandler.DeleteShiftTemplate)
		}

		// Shift routes
		shifts := v1.Group("/shifts")
		{
			shifts.POST("", ownerOnly, shiftHandler.CreateShift)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PUT("/:id", ownerOnly, shiftHandler.UpdateShift)
			shifts.DELETE("/:id", ownerOnly, shiftHandler.DeleteShift)
			shifts.POST("/:id/assignments/:professional_id", shiftHandler.AssignProfessional)
			shifts.DELETE("/:id/assignments/:professional_id", shiftHandler.UnassignProfessional)
			shifts.PATCH("/:id/assignments/:professional_id", ownerOnly, shiftHandler.UpdateAssignment)
		}
	}

	// Catch-all for unmatched routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Route not found"})
	})

	return router
}
