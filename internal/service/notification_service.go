package service

import (
	"context"

	apperrors "travel-planner/internal/errors"
	"travel-planner/internal/models"
	"travel-planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService handles business logic for notification operations.
type NotificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// MarkRead flags a single notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string, userID primitive.ObjectID) (*models.Notification, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotificationNotFound
	}

	return s.repo.MarkRead(ctx, objectID, userID)
}

// MarkAllRead flags every unread notification of the user as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

// Delete removes an owned notification.
func (s *NotificationService) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotificationNotFound
	}

	return s.repo.Delete(ctx, objectID, userID)
}
