package service

import (
	"context"
	"fmt"
	"log"

	apperrors "travel-planner/internal/errors"
	"travel-planner/internal/models"
	"travel-planner/internal/queue"
	"travel-planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FavoriteService handles business logic for favorite operations.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	travelRepo   repository.TravelRepository
	queue        queue.Queue
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, travelRepo repository.TravelRepository, queue queue.Queue) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		travelRepo:   travelRepo,
		queue:        queue,
	}
}

// Add marks a travel as one of the user's favorites. The favorite is a bare
// reference by id; the travel is not required to exist. A user can favorite
// the same travel only once.
func (s *FavoriteService) Add(ctx context.Context, userID primitive.ObjectID, req *models.AddFavoriteRequest) (*models.Favorite, error) {
	travelID, err := primitive.ObjectIDFromHex(req.TravelID)
	if err != nil {
		return nil, apperrors.ErrTravelNotFound
	}

	favorite := &models.Favorite{
		UserID:   userID,
		TravelID: travelID,
	}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}

	// The travel title is looked up best effort for the message only
	message := "A trip is now in your favorites."
	if travels, err := s.travelRepo.FindByIDs(ctx, []primitive.ObjectID{travelID}); err == nil && len(travels) > 0 {
		message = fmt.Sprintf("%q is now in your favorites.", travels[0].Title)
	}
	s.notify(userID, "Added to favorites", message)

	return favorite, nil
}

// Remove deletes the user's favorite for the given travel.
func (s *FavoriteService) Remove(ctx context.Context, userID primitive.ObjectID, travelID string) error {
	objectID, err := primitive.ObjectIDFromHex(travelID)
	if err != nil {
		return apperrors.ErrFavoriteNotFound
	}

	return s.favoriteRepo.Delete(ctx, userID, objectID)
}

// List returns the user's favorites joined with their travels, most recently
// added first. A favorite whose travel was deleted since is returned with a
// nil Travel rather than dropped, so the client can clean it up.
func (s *FavoriteService) List(ctx context.Context, userID primitive.ObjectID) ([]models.FavoriteWithTravel, error) {
	favorites, err := s.favoriteRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(favorites))
	for i, f := range favorites {
		ids[i] = f.TravelID
	}

	travels, err := s.travelRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*models.Travel, len(travels))
	for i := range travels {
		byID[travels[i].ID] = &travels[i]
	}

	result := make([]models.FavoriteWithTravel, len(favorites))
	for i, f := range favorites {
		result[i] = models.FavoriteWithTravel{
			Favorite: f,
			Travel:   byID[f.TravelID],
		}
	}

	return result, nil
}

func (s *FavoriteService) notify(userID primitive.ObjectID, title, message string) {
	err := s.queue.Enqueue(queue.NotificationJob{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    models.NotificationSuccess,
	})
	if err != nil {
		log.Printf("Failed to enqueue notification for user %s: %v", userID.Hex(), err)
	}
}
