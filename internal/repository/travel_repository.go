package repository

import (
	"context"
	"errors"
	"time"

	apperrors "travel-planner/internal/errors"
	"travel-planner/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TravelRepository defines the interface for travel data operations.
// Every lookup and mutation is scoped to the owning user; a travel that
// exists but belongs to someone else is indistinguishable from a missing one.
type TravelRepository interface {
	Create(ctx context.Context, travel *models.Travel) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Travel, error)
	FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.Travel, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Travel, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, version int, update *models.UpdateTravelRequest) (*models.Travel, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	PushActivity(ctx context.Context, id, userID primitive.ObjectID, activity *models.Activity) (*models.Travel, error)
	PushAccommodation(ctx context.Context, id, userID primitive.ObjectID, accommodation *models.Accommodation) (*models.Travel, error)
	SetCoverPhotoKey(ctx context.Context, id, userID primitive.ObjectID, key string) (*models.Travel, error)
}

// travelRepository implements TravelRepository using MongoDB
type travelRepository struct {
	collection *mongo.Collection
}

// NewTravelRepository creates a new TravelRepository
func NewTravelRepository(db *mongo.Database) TravelRepository {
	return &travelRepository{
		collection: db.Collection("travels"),
	}
}

// ownedFilter matches a travel only when the requesting user owns it.
func ownedFilter(id, userID primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "userId": userID}
}

// Create inserts a new travel. Embedded activities and accommodations get
// their own ids so they stay addressable after later appends.
func (r *travelRepository) Create(ctx context.Context, travel *models.Travel) error {
	now := time.Now()
	travel.CreatedAt = now
	travel.UpdatedAt = now
	travel.Version = 0

	if travel.Status == "" {
		travel.Status = models.StatusPlanning
	}
	if travel.Activities == nil {
		travel.Activities = []models.Activity{}
	}
	if travel.Accommodations == nil {
		travel.Accommodations = []models.Accommodation{}
	}
	for i := range travel.Activities {
		if travel.Activities[i].ID.IsZero() {
			travel.Activities[i].ID = primitive.NewObjectID()
		}
	}
	for i := range travel.Accommodations {
		if travel.Accommodations[i].ID.IsZero() {
			travel.Accommodations[i].ID = primitive.NewObjectID()
		}
	}

	result, err := r.collection.InsertOne(ctx, travel)
	if err != nil {
		return err
	}

	travel.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByUserID returns all travels owned by the user, most recent first.
func (r *travelRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Travel, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	travels := []models.Travel{}
	if err := cursor.All(ctx, &travels); err != nil {
		return nil, err
	}

	return travels, nil
}

// FindOwned returns the travel with the given id if the user owns it.
func (r *travelRepository) FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.Travel, error) {
	var travel models.Travel

	err := r.collection.FindOne(ctx, ownedFilter(id, userID)).Decode(&travel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTravelNotFound
		}
		return nil, err
	}

	return &travel, nil
}

// FindByIDs returns the travels whose ids appear in the list. Missing ids are
// simply absent from the result, not an error.
func (r *travelRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Travel, error) {
	if len(ids) == 0 {
		return []models.Travel{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	travels := []models.Travel{}
	if err := cursor.All(ctx, &travels); err != nil {
		return nil, err
	}

	return travels, nil
}

// Update applies the provided fields when the stored version still matches.
// A version mismatch on an existing owned travel returns
// ErrTravelVersionConflict so the caller can retry against fresh state.
func (r *travelRepository) Update(ctx context.Context, id, userID primitive.ObjectID, version int, update *models.UpdateTravelRequest) (*models.Travel, error) {
	setDoc := bson.M{"updatedAt": time.Now()}

	if update.Title != nil {
		setDoc["title"] = *update.Title
	}
	if update.Destination != nil {
		setDoc["destination"] = *update.Destination
	}
	if update.Description != nil {
		setDoc["description"] = *update.Description
	}
	if update.StartDate != nil {
		setDoc["startDate"] = *update.StartDate
	}
	if update.EndDate != nil {
		setDoc["endDate"] = *update.EndDate
	}
	if update.Budget != nil {
		setDoc["budget"] = *update.Budget
	}
	if update.Participants != nil {
		setDoc["participants"] = *update.Participants
	}
	if update.Status != nil {
		setDoc["status"] = *update.Status
	}

	filter := ownedFilter(id, userID)
	filter["version"] = version

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := r.collection.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": setDoc, "$inc": bson.M{"version": 1}},
		opts,
	)

	var travel models.Travel
	if err := result.Decode(&travel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Distinguish a stale version from a missing travel.
			if _, findErr := r.FindOwned(ctx, id, userID); findErr == nil {
				return nil, apperrors.ErrTravelVersionConflict
			}
			return nil, apperrors.ErrTravelNotFound
		}
		return nil, err
	}

	return &travel, nil
}

// Delete removes the travel if the user owns it.
func (r *travelRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, ownedFilter(id, userID))
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTravelNotFound
	}

	return nil
}

// PushActivity appends an activity to the travel and returns the updated
// document. The activity gets a fresh id before the write.
func (r *travelRepository) PushActivity(ctx context.Context, id, userID primitive.ObjectID, activity *models.Activity) (*models.Travel, error) {
	activity.ID = primitive.NewObjectID()
	return r.push(ctx, id, userID, bson.M{"activities": activity})
}

// PushAccommodation appends an accommodation to the travel and returns the
// updated document.
func (r *travelRepository) PushAccommodation(ctx context.Context, id, userID primitive.ObjectID, accommodation *models.Accommodation) (*models.Travel, error) {
	accommodation.ID = primitive.NewObjectID()
	return r.push(ctx, id, userID, bson.M{"accommodations": accommodation})
}

func (r *travelRepository) push(ctx context.Context, id, userID primitive.ObjectID, pushDoc bson.M) (*models.Travel, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := r.collection.FindOneAndUpdate(
		ctx,
		ownedFilter(id, userID),
		bson.M{
			"$push": pushDoc,
			"$set":  bson.M{"updatedAt": time.Now()},
			"$inc":  bson.M{"version": 1},
		},
		opts,
	)

	var travel models.Travel
	if err := result.Decode(&travel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTravelNotFound
		}
		return nil, err
	}

	return &travel, nil
}

// SetCoverPhotoKey records the object storage key of the travel's cover photo.
func (r *travelRepository) SetCoverPhotoKey(ctx context.Context, id, userID primitive.ObjectID, key string) (*models.Travel, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := r.collection.FindOneAndUpdate(
		ctx,
		ownedFilter(id, userID),
		bson.M{"$set": bson.M{"coverPhotoKey": key, "updatedAt": time.Now()}},
		opts,
	)

	var travel models.Travel
	if err := result.Decode(&travel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTravelNotFound
		}
		return nil, err
	}

	return &travel, nil
}
