// Package service contains business logic for the application.
package service

import (
	"context"

	"travel-planner/internal/models"
	"travel-planner/internal/query"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.User, error)
}

// TravelServicer defines the interface for travel operations.
type TravelServicer interface {
	List(ctx context.Context, userID primitive.ObjectID, opts query.Options) ([]models.Travel, error)
	Get(ctx context.Context, id string, userID primitive.ObjectID) (*models.Travel, error)
	Create(ctx context.Context, userID primitive.ObjectID, req *models.CreateTravelRequest) (*models.Travel, error)
	Update(ctx context.Context, id string, userID primitive.ObjectID, req *models.UpdateTravelRequest) (*models.Travel, error)
	Delete(ctx context.Context, id string, userID primitive.ObjectID) error
	AddActivity(ctx context.Context, id string, userID primitive.ObjectID, req *models.ActivityRequest) (*models.Travel, error)
	AddAccommodation(ctx context.Context, id string, userID primitive.ObjectID, req *models.AccommodationRequest) (*models.Travel, error)
	Stats(ctx context.Context, userID primitive.ObjectID) (*query.Statistics, error)
	RequestCoverUpload(ctx context.Context, id string, userID primitive.ObjectID, req *models.CoverPhotoRequest) (*models.CoverPhotoResponse, error)
}

// FavoriteServicer defines the interface for favorite operations.
type FavoriteServicer interface {
	Add(ctx context.Context, userID primitive.ObjectID, req *models.AddFavoriteRequest) (*models.Favorite, error)
	Remove(ctx context.Context, userID primitive.ObjectID, travelID string) error
	List(ctx context.Context, userID primitive.ObjectID) ([]models.FavoriteWithTravel, error)
}

// NotificationServicer defines the interface for notification operations.
type NotificationServicer interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string, userID primitive.ObjectID) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id string, userID primitive.ObjectID) error
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer         = (*AuthService)(nil)
	_ UserServicer         = (*UserService)(nil)
	_ TravelServicer       = (*TravelService)(nil)
	_ FavoriteServicer     = (*FavoriteService)(nil)
	_ NotificationServicer = (*NotificationService)(nil)
)
