package service

import (
	"context"
	"testing"
	"time"

	apperrors "travel-planner/internal/errors"
	"travel-planner/internal/models"
	repomocks "travel-planner/internal/repository/mocks"
	"travel-planner/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestJWTManager() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", 168*time.Hour)
}

func TestNewAuthService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockUserRepository(ctrl)
	jwtManager := newTestJWTManager()

	service := NewAuthService(mockRepo, jwtManager)

	assert.NotNil(t, service)
	assert.Equal(t, mockRepo, service.userRepo)
}

func TestAuthService_Register(t *testing.T) {
	req := &models.CreateUserRequest{
		Email:    "new@example.com",
		Password: "password123",
		Name:     "New User",
	}

	t.Run("creates user and returns token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)
		jwtManager := newTestJWTManager()

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, user *models.User) error {
				// Password must already be hashed
				assert.NotEqual(t, req.Password, user.Password)
				assert.NoError(t, auth.CheckPassword(req.Password, user.Password))
				user.ID = primitive.NewObjectID()
				return nil
			})

		service := NewAuthService(mockRepo, jwtManager)
		resp, err := service.Register(context.Background(), req)

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "new@example.com", resp.User.Email)

		// Token must carry the new user's id
		claims, err := jwtManager.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID.Hex(), claims.UserID)
	})

	t.Run("returns error for duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(apperrors.ErrUserAlreadyExists)

		service := NewAuthService(mockRepo, newTestJWTManager())
		resp, err := service.Register(context.Background(), req)

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	password := "password123"
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "login@example.com",
		Password: hashed,
		Name:     "Login User",
	}

	t.Run("returns token for valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)
		jwtManager := newTestJWTManager()

		mockRepo.EXPECT().
			FindByEmail(gomock.Any(), "login@example.com").
			Return(user, nil)

		service := NewAuthService(mockRepo, jwtManager)
		resp, err := service.Login(context.Background(), &models.LoginRequest{
			Email:    "login@example.com",
			Password: password,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("returns invalid credentials for unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)

		mockRepo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, apperrors.ErrUserNotFound)

		service := NewAuthService(mockRepo, newTestJWTManager())
		resp, err := service.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@example.com",
			Password: password,
		})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})

	t.Run("returns invalid credentials for wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)

		mockRepo.EXPECT().
			FindByEmail(gomock.Any(), "login@example.com").
			Return(user, nil)

		service := NewAuthService(mockRepo, newTestJWTManager())
		resp, err := service.Login(context.Background(), &models.LoginRequest{
			Email:    "login@example.com",
			Password: "wrong-password",
		})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})
}
