//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"travel-planner/internal/cache"
	"travel-planner/internal/handler"
	"travel-planner/internal/queue"
	"travel-planner/internal/repository"
	"travel-planner/internal/router"
	"travel-planner/internal/service"
	"travel-planner/internal/storage"
	"travel-planner/pkg/auth"
	"travel-planner/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestTokenExpiry is the token expiry used in tests.
	TestTokenExpiry = 7 * 24 * time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// testQueueWorkers is the notification worker count used in tests.
	testQueueWorkers = 2
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo         repository.UserRepository
	TravelRepo       repository.TravelRepository
	FavoriteRepo     repository.FavoriteRepository
	NotificationRepo repository.NotificationRepository

	// Services (for direct service access in tests)
	AuthService         service.AuthServicer
	UserService         service.UserServicer
	TravelService       service.TravelServicer
	FavoriteService     service.FavoriteServicer
	NotificationService service.NotificationServicer

	// Auth
	JWTManager *auth.JWTManager

	// Queue
	NotificationQueue     *queue.MemoryQueue
	NotificationProcessor *queue.Processor
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestJWTSecret, TestTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	travelRepo := repository.NewTravelRepository(mongoDB.Database)
	favoriteRepo := repository.NewFavoriteRepository(mongoDB.Database)
	notificationRepo := repository.NewNotificationRepository(mongoDB.Database)

	// Notification queue and processor
	notificationQueue := queue.NewMemoryQueue(100)
	notificationProcessor := queue.NewProcessor(notificationQueue, notificationRepo, testQueueWorkers)

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

	return &TestServer{
		Router:                r,
		MongoDB:               mongoDB,
		Redis:                 redisContainer,
		MinIO:                 minioContainer,
		UserRepo:              userRepo,
		TravelRepo:            travelRepo,
		FavoriteRepo:          favoriteRepo,
		NotificationRepo:      notificationRepo,
		AuthService:           authService,
		UserService:           userService,
		TravelService:         travelService,
		FavoriteService:       favoriteService,
		NotificationService:   notificationService,
		JWTManager:            jwtManager,
		NotificationQueue:     notificationQueue,
		NotificationProcessor: notificationProcessor,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartNotificationProcessor starts the notification processor.
func (ts *TestServer) StartNotificationProcessor(ctx context.Context) {
	ts.NotificationProcessor.Start(ctx)
}

// StopNotificationProcessor stops the notification processor and resets the
// queue so subsequent tests can start a fresh one.
func (ts *TestServer) StopNotificationProcessor() {
	ts.NotificationProcessor.Stop()
	ts.NotificationQueue.Reset()
	// The stopped processor keeps its shutdown state, so build a new one
	ts.NotificationProcessor = queue.NewProcessor(ts.NotificationQueue, ts.NotificationRepo, testQueueWorkers)
}
