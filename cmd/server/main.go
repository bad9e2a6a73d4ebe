package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-planner/internal/cache"
	"travel-planner/internal/config"
	"travel-planner/internal/database"
	"travel-planner/internal/handler"
	"travel-planner/internal/queue"
	"travel-planner/internal/repository"
	"travel-planner/internal/router"
	"travel-planner/internal/service"
	"travel-planner/internal/storage"
	"travel-planner/internal/validator"
	"travel-planner/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Travel Planner API
// @version         1.0
// @description     Personal travel planning API with trips, favorites, and notifications.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	travelRepo := repository.NewTravelRepository(mongoDB.Database)
	favoriteRepo := repository.NewFavoriteRepository(mongoDB.Database)
	notificationRepo := repository.NewNotificationRepository(mongoDB.Database)

	// Notification queue and processor
	notificationQueue := queue.NewMemoryQueue(cfg.QueueSize)
	notificationProcessor := queue.NewProcessor(notificationQueue, notificationRepo, cfg.QueueWorkers)

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, redisCache)
	travelService := service.NewTravelService(travelRepo, redisCache, s3Client, notificationQueue)
	favoriteService := service.NewFavoriteService(favoriteRepo, travelRepo, notificationQueue)
	notificationService := service.NewNotificationService(notificationRepo)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	travelHandler := handler.NewTravelHandler(travelService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:         authHandler,
		UserHandler:         userHandler,
		TravelHandler:       travelHandler,
		FavoriteHandler:     favoriteHandler,
		NotificationHandler: notificationHandler,
		JWTManager:          jwtManager,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start notification processor
	notificationProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop notification processor (waits for workers)
	log.Println("Stopping notification processor...")
	notificationProcessor.Stop()

	log.Println("Server shutdown complete")
}
