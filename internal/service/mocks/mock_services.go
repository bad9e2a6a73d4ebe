// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"travel-planner/internal/models"
	"travel-planner/internal/query"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc       func(ctx context.Context, id string) (*models.User, error)
	UpdateProfileFunc func(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.User, error)
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, req)
	}
	return nil, nil
}

// MockTravelService is a mock implementation of TravelServicer.
type MockTravelService struct {
	ListFunc               func(ctx context.Context, userID primitive.ObjectID, opts query.Options) ([]models.Travel, error)
	GetFunc                func(ctx context.Context, id string, userID primitive.ObjectID) (*models.Travel, error)
	CreateFunc             func(ctx context.Context, userID primitive.ObjectID, req *models.CreateTravelRequest) (*models.Travel, error)
	UpdateFunc             func(ctx context.Context, id string, userID primitive.ObjectID, req *models.UpdateTravelRequest) (*models.Travel, error)
	DeleteFunc             func(ctx context.Context, id string, userID primitive.ObjectID) error
	AddActivityFunc        func(ctx context.Context, id string, userID primitive.ObjectID, req *models.ActivityRequest) (*models.Travel, error)
	AddAccommodationFunc   func(ctx context.Context, id string, userID primitive.ObjectID, req *models.AccommodationRequest) (*models.Travel, error)
	StatsFunc              func(ctx context.Context, userID primitive.ObjectID) (*query.Statistics, error)
	RequestCoverUploadFunc func(ctx context.Context, id string, userID primitive.ObjectID, req *models.CoverPhotoRequest) (*models.CoverPhotoResponse, error)
}

func (m *MockTravelService) List(ctx context.Context, userID primitive.ObjectID, opts query.Options) ([]models.Travel, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, opts)
	}
	return nil, nil
}

func (m *MockTravelService) Get(ctx context.Context, id string, userID primitive.ObjectID) (*models.Travel, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockTravelService) Create(ctx context.Context, userID primitive.ObjectID, req *models.CreateTravelRequest) (*models.Travel, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockTravelService) Update(ctx context.Context, id string, userID primitive.ObjectID, req *models.UpdateTravelRequest) (*models.Travel, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, userID, req)
	}
	return nil, nil
}

func (m *MockTravelService) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

func (m *MockTravelService) AddActivity(ctx context.Context, id string, userID primitive.ObjectID, req *models.ActivityRequest) (*models.Travel, error) {
	if m.AddActivityFunc != nil {
		return m.AddActivityFunc(ctx, id, userID, req)
	}
	return nil, nil
}

func (m *MockTravelService) AddAccommodation(ctx context.Context, id string, userID primitive.ObjectID, req *models.AccommodationRequest) (*models.Travel, error) {
	if m.AddAccommodationFunc != nil {
		return m.AddAccommodationFunc(ctx, id, userID, req)
	}
	return nil, nil
}

func (m *MockTravelService) Stats(ctx context.Context, userID primitive.ObjectID) (*query.Statistics, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTravelService) RequestCoverUpload(ctx context.Context, id string, userID primitive.ObjectID, req *models.CoverPhotoRequest) (*models.CoverPhotoResponse, error) {
	if m.RequestCoverUploadFunc != nil {
		return m.RequestCoverUploadFunc(ctx, id, userID, req)
	}
	return nil, nil
}

// MockFavoriteService is a mock implementation of FavoriteServicer.
type MockFavoriteService struct {
	AddFunc    func(ctx context.Context, userID primitive.ObjectID, req *models.AddFavoriteRequest) (*models.Favorite, error)
	RemoveFunc func(ctx context.Context, userID primitive.ObjectID, travelID string) error
	ListFunc   func(ctx context.Context, userID primitive.ObjectID) ([]models.FavoriteWithTravel, error)
}

func (m *MockFavoriteService) Add(ctx context.Context, userID primitive.ObjectID, req *models.AddFavoriteRequest) (*models.Favorite, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockFavoriteService) Remove(ctx context.Context, userID primitive.ObjectID, travelID string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, travelID)
	}
	return nil
}

func (m *MockFavoriteService) List(ctx context.Context, userID primitive.ObjectID) ([]models.FavoriteWithTravel, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

// MockNotificationService is a mock implementation of NotificationServicer.
type MockNotificationService struct {
	ListFunc        func(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error)
	MarkReadFunc    func(ctx context.Context, id string, userID primitive.ObjectID) (*models.Notification, error)
	MarkAllReadFunc func(ctx context.Context, userID primitive.ObjectID) (int64, error)
	DeleteFunc      func(ctx context.Context, id string, userID primitive.ObjectID) error
}

func (m *MockNotificationService) List(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockNotificationService) MarkRead(ctx context.Context, id string, userID primitive.ObjectID) (*models.Notification, error) {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockNotificationService) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}
