package handler

import (
	"errors"

	apperrors "travel-planner/internal/errors"
	"travel-planner/internal/middleware"
	"travel-planner/internal/service"
	"travel-planner/pkg/response"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for notification operations.
type NotificationHandler struct {
	service service.NotificationServicer
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service service.NotificationServicer) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications godoc
// @Summary      List notifications
// @Description  Retrieve the authenticated user's notifications, newest first
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Notification}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	notifications, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, notifications)
}

// MarkRead godoc
// @Summary      Mark notification as read
// @Description  Mark a single notification as read. Marking an already-read notification is a no-op.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.Response{data=models.Notification}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	notification, err := h.service.MarkRead(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotificationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, notification)
}

// MarkAllRead godoc
// @Summary      Mark all notifications as read
// @Description  Mark every unread notification of the authenticated user as read
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	updated, err := h.service.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"updated": updated})
}

// DeleteNotification godoc
// @Summary      Delete notification
// @Description  Delete a single notification of the authenticated user
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotificationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "notification deleted"})
}
