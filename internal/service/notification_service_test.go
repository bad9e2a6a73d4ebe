package service

import (
	"context"
	"testing"

	apperrors "travel-planner/internal/errors"
	"travel-planner/internal/models"
	repomocks "travel-planner/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_List(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("returns the user's notifications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)

		notifications := []models.Notification{
			{ID: primitive.NewObjectID(), UserID: userID, Title: "Trip created"},
			{ID: primitive.NewObjectID(), UserID: userID, Title: "Added to favorites"},
		}

		mockRepo.EXPECT().
			FindByUserID(gomock.Any(), userID).
			Return(notifications, nil)

		service := NewNotificationService(mockRepo)
		result, err := service.List(context.Background(), userID)

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	userID := primitive.NewObjectID()
	notificationID := primitive.NewObjectID()

	t.Run("marks notification as read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)

		mockRepo.EXPECT().
			MarkRead(gomock.Any(), notificationID, userID).
			Return(&models.Notification{ID: notificationID, UserID: userID, Read: true}, nil)

		service := NewNotificationService(mockRepo)
		notification, err := service.MarkRead(context.Background(), notificationID.Hex(), userID)

		require.NoError(t, err)
		assert.True(t, notification.Read)
	})

	t.Run("returns not found for invalid id format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewNotificationService(repomocks.NewMockNotificationRepository(ctrl))
		notification, err := service.MarkRead(context.Background(), "not-an-id", userID)

		assert.Nil(t, notification)
		assert.Equal(t, apperrors.ErrNotificationNotFound, err)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("returns number of updated notifications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)

		mockRepo.EXPECT().
			MarkAllRead(gomock.Any(), userID).
			Return(int64(3), nil)

		service := NewNotificationService(mockRepo)
		count, err := service.MarkAllRead(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestNotificationService_Delete(t *testing.T) {
	userID := primitive.NewObjectID()
	notificationID := primitive.NewObjectID()

	t.Run("deletes owned notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockNotificationRepository(ctrl)

		mockRepo.EXPECT().
			Delete(gomock.Any(), notificationID, userID).
			Return(nil)

		service := NewNotificationService(mockRepo)
		err := service.Delete(context.Background(), notificationID.Hex(), userID)

		assert.NoError(t, err)
	})

	t.Run("returns not found for invalid id format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewNotificationService(repomocks.NewMockNotificationRepository(ctrl))
		err := service.Delete(context.Background(), "not-an-id", userID)

		assert.Equal(t, apperrors.ErrNotificationNotFound, err)
	})
}
