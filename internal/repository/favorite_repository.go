package repository

import (
	"context"
	"time"

	apperrors "travel-planner/internal/errors"
	"travel-planner/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FavoriteRepository defines the interface for favorite data operations
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, userID, travelID primitive.ObjectID) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error)
}

// favoriteRepository implements FavoriteRepository using MongoDB
type favoriteRepository struct {
	collection *mongo.Collection
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db *mongo.Database) FavoriteRepository {
	return &favoriteRepository{
		collection: db.Collection("favorites"),
	}
}

// Create inserts a favorite. A user can favorite a travel at most once; the
// unique (userId, travelId) index backs up the precheck under concurrency.
func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"userId":   favorite.UserID,
		"travelId": favorite.TravelID,
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrFavoriteAlreadyExists
	}

	favorite.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, favorite)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrFavoriteAlreadyExists
		}
		return err
	}

	favorite.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Delete removes the user's favorite for the given travel.
func (r *favoriteRepository) Delete(ctx context.Context, userID, travelID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{
		"userId":   userID,
		"travelId": travelID,
	})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrFavoriteNotFound
	}

	return nil
}

// FindByUserID returns the user's favorites, most recently added first.
func (r *favoriteRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	favorites := []models.Favorite{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}

	return favorites, nil
}
