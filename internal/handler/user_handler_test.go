package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "travel-planner/internal/errors"
	"travel-planner/internal/models"
	"travel-planner/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUserHandler(t *testing.T) {
	mockService := &mocks.MockUserService{}
	handler := NewUserHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	userID := primitive.NewObjectID()
	newName := "Updated Name"

	tests := []struct {
		name           string
		authenticated  bool
		body           interface{}
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:          "successful update",
			authenticated: true,
			body:          models.UpdateProfileRequest{Name: &newName},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateProfileFunc = func(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.User, error) {
					assert.Equal(t, userID.Hex(), id)
					return &models.User{
						ID:    userID,
						Email: "test@example.com",
						Name:  *req.Name,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "Updated Name")
			},
		},
		{
			name:           "rejects unauthenticated request",
			authenticated:  false,
			body:           models.UpdateProfileRequest{Name: &newName},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid JSON body",
			authenticated:  true,
			body:           "invalid json",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid email format",
			authenticated:  true,
			body:           map[string]string{"email": "not-an-email"},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "user not found",
			authenticated: true,
			body:          models.UpdateProfileRequest{Name: &newName},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateProfileFunc = func(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:          "email already taken",
			authenticated: true,
			body:          models.UpdateProfileRequest{Name: &newName},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateProfileFunc = func(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.User, error) {
					return nil, apperrors.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:          "internal server error",
			authenticated: true,
			body:          models.UpdateProfileRequest{Name: &newName},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateProfileFunc = func(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			if tt.authenticated {
				router.Use(setUser(userID))
			}
			router.PUT("/users/profile", handler.UpdateProfile)

			req := httptest.NewRequest(http.MethodPut, "/users/profile", bytes.NewBuffer(marshalBody(t, tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestUserHandler_UpdateProfile_ResponseEnvelope(t *testing.T) {
	userID := primitive.NewObjectID()
	newEmail := "new@example.com"

	mockService := &mocks.MockUserService{
		UpdateProfileFunc: func(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.User, error) {
			return &models.User{ID: userID, Email: *req.Email, Name: "Test User"}, nil
		},
	}

	handler := NewUserHandler(mockService)

	router := gin.New()
	router.Use(setUser(userID))
	router.PUT("/users/profile", handler.UpdateProfile)

	body, _ := json.Marshal(models.UpdateProfileRequest{Email: &newEmail})
	req := httptest.NewRequest(http.MethodPut, "/users/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "new@example.com", data["email"])
	// Password hash must never leak into responses
	_, hasPassword := data["password"]
	assert.False(t, hasPassword)
}
