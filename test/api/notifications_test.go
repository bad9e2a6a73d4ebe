//go:build api

package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"travel-planner/internal/models"
	"travel-planner/test/api/testserver"
	"travel-planner/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotificationDelivery tests that API writes produce notifications
// through the async queue.
func TestNotificationDelivery(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	testServer.StartNotificationProcessor(ctx)
	defer testServer.StopNotificationProcessor()

	authHelper := testserver.NewAuthHelper(testServer)
	travelHelper := testserver.NewTravelHelper(testServer)
	_, token := authHelper.CreateDefaultUser(t)

	listNotifications := func() []map[string]interface{} {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := testutil.ParseListResponse(t, w)
		return resp.Data
	}

	t.Run("creating a travel notifies the owner", func(t *testing.T) {
		travelHelper.CreateTravel(t, token, "Spring in Kyoto", "Kyoto")

		require.Eventually(t, func() bool {
			return len(listNotifications()) >= 1
		}, 5*time.Second, 50*time.Millisecond, "notification should arrive asynchronously")

		notifications := listNotifications()
		found := false
		for _, n := range notifications {
			if n["title"] == "Trip created" {
				found = true
				assert.Contains(t, n["message"], "Spring in Kyoto")
				assert.Equal(t, string(models.NotificationInfo), n["type"])
				assert.Equal(t, false, n["read"], "new notifications start unread")
			}
		}
		assert.True(t, found, "expected a 'Trip created' notification")
	})

	t.Run("favoriting a travel notifies the user", func(t *testing.T) {
		created := travelHelper.CreateTravel(t, token, "Hokkaido Ski Trip", "Niseko")
		travelID := testserver.GetIDFromResponse(t, created)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/favorites", token, models.AddFavoriteRequest{TravelID: travelID})
		require.Equal(t, http.StatusCreated, w.Code)

		require.Eventually(t, func() bool {
			for _, n := range listNotifications() {
				if n["title"] == "Added to favorites" {
					return true
				}
			}
			return false
		}, 5*time.Second, 50*time.Millisecond, "favorite notification should arrive asynchronously")
	})
}

// TestListNotifications tests the GET /api/v1/notifications endpoint.
func TestListNotifications(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	notificationHelper := testserver.NewNotificationHelper(testServer)
	userData, token := authHelper.CreateDefaultUser(t)
	userID := testserver.GetObjectIDFromResponse(t, userData)
	otherData, otherToken := authHelper.CreateAuthenticatedUser(t, "Other User", "other@example.com", "password123")
	otherID := testserver.GetObjectIDFromResponse(t, otherData)

	notificationHelper.SeedNotification(t, &models.Notification{
		UserID:  userID,
		Title:   "Trip created",
		Message: `Your trip "Spring in Kyoto" to Kyoto was created.`,
		Type:    models.NotificationInfo,
	})
	notificationHelper.SeedNotification(t, &models.Notification{
		UserID:  otherID,
		Title:   "Trip created",
		Message: `Your trip "Okinawa Beach Week" to Okinawa was created.`,
		Type:    models.NotificationInfo,
	})

	t.Run("returns only own notifications", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", token, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseListResponse(t, w)
		require.Len(t, resp.Data, 1)
		assert.Contains(t, resp.Data[0]["message"], "Spring in Kyoto")
	})

	t.Run("other user sees only their own", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", otherToken, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseListResponse(t, w)
		require.Len(t, resp.Data, 1)
		assert.Contains(t, resp.Data[0]["message"], "Okinawa Beach Week")
	})

	t.Run("error - missing token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestMarkNotificationRead tests the PUT /api/v1/notifications/:id/read endpoint.
func TestMarkNotificationRead(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	notificationHelper := testserver.NewNotificationHelper(testServer)
	userData, token := authHelper.CreateDefaultUser(t)
	userID := testserver.GetObjectIDFromResponse(t, userData)
	_, otherToken := authHelper.CreateAuthenticatedUser(t, "Other User", "other@example.com", "password123")

	notification := notificationHelper.SeedNotification(t, &models.Notification{
		UserID:  userID,
		Title:   "Trip created",
		Message: `Your trip "Spring in Kyoto" to Kyoto was created.`,
		Type:    models.NotificationInfo,
	})
	notificationID := notification.ID.Hex()

	t.Run("error - cannot mark another user's notification", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/"+notificationID+"/read", otherToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success - marks notification read", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/"+notificationID+"/read", token, nil)

		require.Equal(t, http.StatusOK, w.Code, "mark read should return 200, got: %s", w.Body.String())

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, true, resp.Data["read"])
	})

	t.Run("success - marking read is idempotent", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/"+notificationID+"/read", token, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, true, resp.Data["read"])
	})

	t.Run("error - unknown notification", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/507f1f77bcf86cd799439011/read", token, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestMarkAllNotificationsRead tests the PUT /api/v1/notifications/read-all endpoint.
func TestMarkAllNotificationsRead(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	notificationHelper := testserver.NewNotificationHelper(testServer)
	userData, token := authHelper.CreateDefaultUser(t)
	userID := testserver.GetObjectIDFromResponse(t, userData)

	for i := 0; i < 3; i++ {
		notificationHelper.SeedNotification(t, &models.Notification{
			UserID:  userID,
			Title:   "Trip created",
			Message: "A trip was created.",
			Type:    models.NotificationInfo,
		})
	}

	t.Run("success - marks all read and reports count", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/read-all", token, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, float64(3), resp.Data["updated"])

		// All notifications are now read
		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", token, nil)
		listResp := testutil.ParseListResponse(t, w2)
		for _, n := range listResp.Data {
			assert.Equal(t, true, n["read"])
		}
	})

	t.Run("success - second call updates nothing", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/notifications/read-all", token, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, float64(0), resp.Data["updated"])
	})
}

// TestDeleteNotification tests the DELETE /api/v1/notifications/:id endpoint.
func TestDeleteNotification(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	notificationHelper := testserver.NewNotificationHelper(testServer)
	userData, token := authHelper.CreateDefaultUser(t)
	userID := testserver.GetObjectIDFromResponse(t, userData)

	notification := notificationHelper.SeedNotification(t, &models.Notification{
		UserID:  userID,
		Title:   "Trip created",
		Message: "A trip was created.",
		Type:    models.NotificationInfo,
	})
	notificationID := notification.ID.Hex()

	t.Run("success - deletes notification", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/notifications/"+notificationID, token, nil)

		require.Equal(t, http.StatusOK, w.Code)

		w2 := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/notifications", token, nil)
		resp := testutil.ParseListResponse(t, w2)
		assert.Empty(t, resp.Data)
	})

	t.Run("error - deleting twice is not found", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/notifications/"+notificationID, token, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
