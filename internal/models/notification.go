package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType classifies a notification for display.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is a message delivered to a single user.
type Notification struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439051"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	Title     string             `json:"title" bson:"title" example:"Travel created"`
	Message   string             `json:"message" bson:"message" example:"Your travel \"Spring in Kyoto\" has been created."`
	Type      NotificationType   `json:"type" bson:"type" example:"info"`
	Read      bool               `json:"read" bson:"read" example:"false"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}
