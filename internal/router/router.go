// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "travel-planner/swagger" // Import generated swagger docs

	"travel-planner/internal/handler"
	"travel-planner/internal/middleware"
	"travel-planner/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	TravelHandler       *handler.TravelHandler
	FavoriteHandler     *handler.FavoriteHandler
	NotificationHandler *handler.NotificationHandler
	JWTManager          *auth.JWTManager
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.Auth(cfg.JWTManager))
		{
			authProtected.GET("/me", cfg.AuthHandler.Me)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(middleware.Auth(cfg.JWTManager))
		{
			users.PUT("/profile", cfg.UserHandler.UpdateProfile)
		}

		// Travel routes (protected)
		travels := v1.Group("/travels")
		travels.Use(middleware.Auth(cfg.JWTManager))
		{
			travels.GET("", cfg.TravelHandler.ListTravels)
			travels.POST("", cfg.TravelHandler.CreateTravel)
			// Registered before /:id so "stats" is not captured as a travel id
			travels.GET("/stats", cfg.TravelHandler.GetStats)
			travels.GET("/:id", cfg.TravelHandler.GetTravel)
			travels.PUT("/:id", cfg.TravelHandler.UpdateTravel)
			travels.DELETE("/:id", cfg.TravelHandler.DeleteTravel)
			travels.POST("/:id/activities", cfg.TravelHandler.AddActivity)
			travels.POST("/:id/accommodations", cfg.TravelHandler.AddAccommodation)
			travels.POST("/:id/cover", cfg.TravelHandler.RequestCoverUpload)
		}

		// Favorite routes (protected)
		favorites := v1.Group("/favorites")
		favorites.Use(middleware.Auth(cfg.JWTManager))
		{
			favorites.GET("", cfg.FavoriteHandler.ListFavorites)
			favorites.POST("", cfg.FavoriteHandler.AddFavorite)
			favorites.DELETE("/:travelId", cfg.FavoriteHandler.RemoveFavorite)
		}

		// Notification routes (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(middleware.Auth(cfg.JWTManager))
		{
			notifications.GET("", cfg.NotificationHandler.ListNotifications)
			notifications.PUT("/read-all", cfg.NotificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", cfg.NotificationHandler.MarkRead)
			notifications.DELETE("/:id", cfg.NotificationHandler.DeleteNotification)
		}
	}

	return r
}
