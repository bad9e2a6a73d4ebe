package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TravelStatus represents the planning status of a travel.
type TravelStatus string

const (
	// StatusPlanning indicates the travel is still being planned.
	StatusPlanning TravelStatus = "planning"
	// StatusConfirmed indicates the travel dates and bookings are fixed.
	StatusConfirmed TravelStatus = "confirmed"
	// StatusCompleted indicates the travel already happened.
	StatusCompleted TravelStatus = "completed"
	// StatusCancelled indicates the travel was called off.
	StatusCancelled TravelStatus = "cancelled"
)

// ActivityCategory classifies an activity entry.
type ActivityCategory string

const (
	CategorySightseeing   ActivityCategory = "sightseeing"
	CategoryFood          ActivityCategory = "food"
	CategoryShopping      ActivityCategory = "shopping"
	CategoryEntertainment ActivityCategory = "entertainment"
	CategoryTransport     ActivityCategory = "transport"
	CategoryOther         ActivityCategory = "other"
)

// AccommodationType classifies an accommodation entry.
type AccommodationType string

const (
	TypeHotel      AccommodationType = "hotel"
	TypeRyokan     AccommodationType = "ryokan"
	TypeGuesthouse AccommodationType = "guesthouse"
	TypeApartment  AccommodationType = "apartment"
	TypeOther      AccommodationType = "other"
)

// Activity is a line item embedded in a travel. It has no identity outside
// its parent; the id is generated at append time so future per-item edits
// stay addressable.
type Activity struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439021"`
	Name        string             `json:"name" bson:"name" example:"Fushimi Inari shrine"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Date        time.Time          `json:"date" bson:"date" example:"2024-04-02T09:00:00Z"`
	Location    string             `json:"location" bson:"location" example:"Kyoto"`
	Cost        float64            `json:"cost" bson:"cost" example:"0"`
	Category    ActivityCategory   `json:"category" bson:"category" example:"sightseeing"`
}

// Accommodation is a lodging line item embedded in a travel.
type Accommodation struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439031"`
	Name     string             `json:"name" bson:"name" example:"Gion Ryokan"`
	Type     AccommodationType  `json:"type" bson:"type" example:"ryokan"`
	Address  string             `json:"address" bson:"address" example:"Higashiyama-ku, Kyoto"`
	CheckIn  time.Time          `json:"checkIn" bson:"checkIn" example:"2024-04-01T15:00:00Z"`
	CheckOut time.Time          `json:"checkOut" bson:"checkOut" example:"2024-04-03T10:00:00Z"`
	Cost     float64            `json:"cost" bson:"cost" example:"32000"`
	Rating   *int               `json:"rating,omitempty" bson:"rating,omitempty" example:"5"`
}

// Travel represents a trip owned by a single user. All reads and writes are
// scoped by (id, userId); a non-owner sees the same result as "not found".
type Travel struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	Title          string             `json:"title" bson:"title" example:"Spring in Kyoto"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Destination    string             `json:"destination" bson:"destination" example:"Kyoto"`
	StartDate      time.Time          `json:"startDate" bson:"startDate" example:"2024-04-01T00:00:00Z"`
	EndDate        time.Time          `json:"endDate" bson:"endDate" example:"2024-04-05T00:00:00Z"`
	Budget         float64            `json:"budget" bson:"budget" example:"120000"`
	Participants   int                `json:"participants" bson:"participants" example:"2"`
	Status         TravelStatus       `json:"status" bson:"status" example:"planning"`
	Activities     []Activity         `json:"activities" bson:"activities"`
	Accommodations []Accommodation    `json:"accommodations" bson:"accommodations"`
	CoverPhotoKey  string             `json:"-" bson:"coverPhotoKey,omitempty"`                                          // S3 key, not exposed in JSON
	CoverPhotoURL  string             `json:"coverPhotoUrl,omitempty" bson:"-" example:"https://bucket.s3.../cover.jpg"` // Pre-signed URL, not stored in DB
	Version        int                `json:"version" bson:"version" example:"1"`                                       // Incremented on every update, used for conditional writes
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T10:00:00Z"`
}

// ActivityRequest is the payload for appending an activity to a travel.
type ActivityRequest struct {
	Name        string           `json:"name" binding:"required,min=1" example:"Fushimi Inari shrine"`
	Description string           `json:"description" example:"Early morning hike through the torii gates"`
	Date        time.Time        `json:"date" binding:"required" example:"2024-04-02T09:00:00Z"`
	Location    string           `json:"location" binding:"required,min=1" example:"Kyoto"`
	Cost        *float64         `json:"cost" binding:"required,gte=0" example:"0"`
	Category    ActivityCategory `json:"category" binding:"required,oneof=sightseeing food shopping entertainment transport other" example:"sightseeing"`
}

// AccommodationRequest is the payload for appending an accommodation to a travel.
type AccommodationRequest struct {
	Name     string            `json:"name" binding:"required,min=1" example:"Gion Ryokan"`
	Type     AccommodationType `json:"type" binding:"required,oneof=hotel ryokan guesthouse apartment other" example:"ryokan"`
	Address  string            `json:"address" binding:"required,min=1" example:"Higashiyama-ku, Kyoto"`
	CheckIn  time.Time         `json:"checkIn" binding:"required" example:"2024-04-01T15:00:00Z"`
	CheckOut time.Time         `json:"checkOut" binding:"required" example:"2024-04-03T10:00:00Z"`
	Cost     *float64          `json:"cost" binding:"required,gte=0" example:"32000"`
	Rating   *int              `json:"rating" binding:"omitempty,gte=1,lte=5" example:"5"`
}

// CreateTravelRequest is the payload for creating a travel.
type CreateTravelRequest struct {
	Title          string                 `json:"title" binding:"required,min=1,max=200" example:"Spring in Kyoto"`
	Description    string                 `json:"description" binding:"max=2000" example:"Cherry blossom season"`
	Destination    string                 `json:"destination" binding:"required,min=1,max=200" example:"Kyoto"`
	StartDate      time.Time              `json:"startDate" binding:"required" example:"2024-04-01T00:00:00Z"`
	EndDate        time.Time              `json:"endDate" binding:"required" example:"2024-04-05T00:00:00Z"`
	Budget         *float64               `json:"budget" binding:"required,gte=0" example:"120000"`
	Participants   *int                   `json:"participants" binding:"required,gte=1" example:"2"`
	Activities     []ActivityRequest      `json:"activities" binding:"omitempty,dive"`
	Accommodations []AccommodationRequest `json:"accommodations" binding:"omitempty,dive"`
}

// UpdateTravelRequest is the payload for partially updating a travel.
type UpdateTravelRequest struct {
	Title        *string       `json:"title" binding:"omitempty,min=1,max=200" example:"Autumn in Kyoto"`
	Description  *string       `json:"description" binding:"omitempty,max=2000"`
	Destination  *string       `json:"destination" binding:"omitempty,min=1,max=200"`
	StartDate    *time.Time    `json:"startDate"`
	EndDate      *time.Time    `json:"endDate"`
	Budget       *float64      `json:"budget" binding:"omitempty,gte=0" example:"98000"`
	Participants *int          `json:"participants" binding:"omitempty,gte=1" example:"3"`
	Status       *TravelStatus `json:"status" binding:"omitempty,oneof=planning confirmed completed cancelled" example:"confirmed"`
}

// CoverPhotoRequest is the payload for requesting a cover photo upload URL.
type CoverPhotoRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=image/jpeg image/png image/webp" example:"image/jpeg"`
}

// CoverPhotoResponse is the response for a cover photo upload request.
type CoverPhotoResponse struct {
	Travel    Travel `json:"travel"`
	UploadURL string `json:"uploadUrl" example:"https://bucket.s3.amazonaws.com/covers/...?X-Amz-Signature=..."`
}
