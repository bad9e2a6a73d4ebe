package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite marks a travel as a favorite of a user. The (userId, travelId)
// pair is unique; adding the same pair twice is a conflict, not a duplicate.
type Favorite struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439041"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	TravelID  primitive.ObjectID `json:"travelId" bson:"travelId" example:"507f1f77bcf86cd799439011"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// AddFavoriteRequest is the payload for adding a travel to favorites.
type AddFavoriteRequest struct {
	TravelID string `json:"travelId" binding:"required,objectid" example:"507f1f77bcf86cd799439011"`
}

// FavoriteWithTravel is a favorite joined with its referenced travel for
// display. Travel is nil when the referenced travel no longer exists.
type FavoriteWithTravel struct {
	Favorite
	Travel *Travel `json:"travel,omitempty"`
}
