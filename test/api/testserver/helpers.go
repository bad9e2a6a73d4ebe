//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"travel-planner/internal/models"
	"travel-planner/pkg/response"
	"travel-planner/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the auth response data
// (token plus user).
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email, password string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "register response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// Login logs in a user and returns the auth response data.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "login response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// CreateAuthenticatedUser registers a user and returns the user data and
// bearer token. Registration already issues a token, so no extra login.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, name, email, password string) (userData map[string]interface{}, token string) {
	t.Helper()

	data := ah.RegisterUser(t, name, email, password)

	token, ok := data["token"].(string)
	require.True(t, ok, "token should be a string")

	userData, ok = data["user"].(map[string]interface{})
	require.True(t, ok, "user should be a map")

	return userData, token
}

// CreateDefaultUser creates a user with default test credentials.
func (ah *AuthHelper) CreateDefaultUser(t *testing.T) (userData map[string]interface{}, token string) {
	t.Helper()
	return ah.CreateAuthenticatedUser(t, "Test User", "test@example.com", "password123")
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ah.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// TravelHelper provides travel helpers for API tests.
type TravelHelper struct {
	server *TestServer
}

// NewTravelHelper creates a new travel helper.
func NewTravelHelper(server *TestServer) *TravelHelper {
	return &TravelHelper{server: server}
}

// CreateTravel creates a travel via API and returns the response data.
func (th *TravelHelper) CreateTravel(t *testing.T, token, title, destination string) map[string]interface{} {
	t.Helper()

	budget := 120000.0
	participants := 2
	req := models.CreateTravelRequest{
		Title:        title,
		Destination:  destination,
		StartDate:    time.Now().AddDate(0, 1, 0),
		EndDate:      time.Now().AddDate(0, 1, 5),
		Budget:       &budget,
		Participants: &participants,
	}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/travels", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create travel should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create travel response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// SeedTravel directly inserts a travel into the database (bypasses API).
func (th *TravelHelper) SeedTravel(t *testing.T, travel *models.Travel) *models.Travel {
	t.Helper()
	ctx := context.Background()

	err := th.server.TravelRepo.Create(ctx, travel)
	require.NoError(t, err, "failed to seed travel")

	return travel
}

// NotificationHelper provides notification helpers for API tests.
type NotificationHelper struct {
	server *TestServer
}

// NewNotificationHelper creates a new notification helper.
func NewNotificationHelper(server *TestServer) *NotificationHelper {
	return &NotificationHelper{server: server}
}

// SeedNotification directly inserts a notification into the database.
func (nh *NotificationHelper) SeedNotification(t *testing.T, notification *models.Notification) *models.Notification {
	t.Helper()
	ctx := context.Background()

	err := nh.server.NotificationRepo.Create(ctx, notification)
	require.NoError(t, err, "failed to seed notification")

	return notification
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data.
// It handles both direct id fields and nested user objects (auth responses).
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	idStr := GetIDFromResponse(t, data)
	oid, err := primitive.ObjectIDFromHex(idStr)
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
