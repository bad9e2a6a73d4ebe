package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"travel-planner/internal/cache"
	apperrors "travel-planner/internal/errors"
	"travel-planner/internal/models"
	"travel-planner/internal/query"
	"travel-planner/internal/queue"
	"travel-planner/internal/repository"
	"travel-planner/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	statsCacheTTL = time.Minute
	// coverDownloadExpiry bounds how long a returned cover photo URL stays valid.
	coverDownloadExpiry = 15 * time.Minute
	// coverUploadExpiry bounds how long a client has to complete an upload.
	coverUploadExpiry = 10 * time.Minute
)

var coverExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// TravelService handles business logic for travel operations.
type TravelService struct {
	repo    repository.TravelRepository
	cache   cache.Cache
	storage storage.Storage
	queue   queue.Queue
}

// NewTravelService creates a new TravelService.
func NewTravelService(repo repository.TravelRepository, cache cache.Cache, storage storage.Storage, queue queue.Queue) *TravelService {
	return &TravelService{
		repo:    repo,
		cache:   cache,
		storage: storage,
		queue:   queue,
	}
}

// List returns the user's travels with the requested filters and sort
// applied. Cover photo URLs are attached the same way Get attaches them.
func (s *TravelService) List(ctx context.Context, userID primitive.ObjectID, opts query.Options) ([]models.Travel, error) {
	travels, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := query.FilterAndSort(travels, opts)
	for i := range result {
		s.attachCoverURL(ctx, &result[i])
	}
	return result, nil
}

// Get returns a single owned travel. When the travel has a cover photo, a
// short-lived download URL is attached.
func (s *TravelService) Get(ctx context.Context, id string, userID primitive.ObjectID) (*models.Travel, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTravelNotFound
	}

	travel, err := s.repo.FindOwned(ctx, objectID, userID)
	if err != nil {
		return nil, err
	}

	s.attachCoverURL(ctx, travel)
	return travel, nil
}

// Create stores a new travel for the user and dispatches a notification.
func (s *TravelService) Create(ctx context.Context, userID primitive.ObjectID, req *models.CreateTravelRequest) (*models.Travel, error) {
	travel := &models.Travel{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Budget:       *req.Budget,
		Participants: *req.Participants,
	}

	for _, a := range req.Activities {
		travel.Activities = append(travel.Activities, activityFromRequest(&a))
	}
	for _, a := range req.Accommodations {
		travel.Accommodations = append(travel.Accommodations, accommodationFromRequest(&a))
	}

	if err := s.repo.Create(ctx, travel); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	s.notify(userID, "Trip created", fmt.Sprintf("Your trip %q to %s was created.", travel.Title, travel.Destination), models.NotificationInfo)

	return travel, nil
}

// Update applies a partial update against the travel's current version.
func (s *TravelService) Update(ctx context.Context, id string, userID primitive.ObjectID, req *models.UpdateTravelRequest) (*models.Travel, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTravelNotFound
	}

	current, err := s.repo.FindOwned(ctx, objectID, userID)
	if err != nil {
		return nil, err
	}

	travel, err := s.repo.Update(ctx, objectID, userID, current.Version, req)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	s.attachCoverURL(ctx, travel)
	return travel, nil
}

// Delete removes an owned travel.
func (s *TravelService) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrTravelNotFound
	}

	if err := s.repo.Delete(ctx, objectID, userID); err != nil {
		return err
	}

	s.invalidateStats(ctx, userID)
	return nil
}

// AddActivity appends an activity to an owned travel.
func (s *TravelService) AddActivity(ctx context.Context, id string, userID primitive.ObjectID, req *models.ActivityRequest) (*models.Travel, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTravelNotFound
	}

	activity := activityFromRequest(req)
	travel, err := s.repo.PushActivity(ctx, objectID, userID, &activity)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	return travel, nil
}

// AddAccommodation appends an accommodation to an owned travel.
func (s *TravelService) AddAccommodation(ctx context.Context, id string, userID primitive.ObjectID, req *models.AccommodationRequest) (*models.Travel, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTravelNotFound
	}

	accommodation := accommodationFromRequest(req)
	travel, err := s.repo.PushAccommodation(ctx, objectID, userID, &accommodation)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	return travel, nil
}

// Stats returns aggregate statistics over the user's travels (with caching).
func (s *TravelService) Stats(ctx context.Context, userID primitive.ObjectID) (*query.Statistics, error) {
	cacheKey := cache.TravelStatsCacheKey(userID.Hex())
	var cached query.Statistics
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil // Cache hit
	}

	travels, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := query.ComputeStatistics(travels, time.Now())

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, stats, statsCacheTTL)

	return &stats, nil
}

// RequestCoverUpload issues a pre-signed upload URL for the travel's cover
// photo and records the object key on the travel.
func (s *TravelService) RequestCoverUpload(ctx context.Context, id string, userID primitive.ObjectID, req *models.CoverPhotoRequest) (*models.CoverPhotoResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTravelNotFound
	}

	if _, err := s.repo.FindOwned(ctx, objectID, userID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("covers/%s%s", objectID.Hex(), coverExtensions[req.ContentType])
	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, req.ContentType, coverUploadExpiry)
	if err != nil {
		return nil, err
	}

	travel, err := s.repo.SetCoverPhotoKey(ctx, objectID, userID, key)
	if err != nil {
		return nil, err
	}

	s.attachCoverURL(ctx, travel)
	return &models.CoverPhotoResponse{
		Travel:    *travel,
		UploadURL: uploadURL,
	}, nil
}

// attachCoverURL fills in a pre-signed download URL for the cover photo.
// Failures are logged and swallowed; the travel itself is still usable.
func (s *TravelService) attachCoverURL(ctx context.Context, travel *models.Travel) {
	if travel.CoverPhotoKey == "" {
		return
	}

	url, err := s.storage.GetPresignedURL(ctx, travel.CoverPhotoKey, coverDownloadExpiry)
	if err != nil {
		log.Printf("Failed to presign cover photo for travel %s: %v", travel.ID.Hex(), err)
		return
	}
	travel.CoverPhotoURL = url
}

func (s *TravelService) invalidateStats(ctx context.Context, userID primitive.ObjectID) {
	_ = s.cache.Delete(ctx, cache.TravelStatsCacheKey(userID.Hex()))
}

// notify enqueues a notification job. Delivery is best effort; a full queue
// only loses the notification, never the travel write.
func (s *TravelService) notify(userID primitive.ObjectID, title, message string, notifType models.NotificationType) {
	err := s.queue.Enqueue(queue.NotificationJob{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
	})
	if err != nil {
		log.Printf("Failed to enqueue notification for user %s: %v", userID.Hex(), err)
	}
}

func activityFromRequest(req *models.ActivityRequest) models.Activity {
	return models.Activity{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Cost:        *req.Cost,
		Category:    req.Category,
	}
}

func accommodationFromRequest(req *models.AccommodationRequest) models.Accommodation {
	return models.Accommodation{
		Name:     req.Name,
		Type:     req.Type,
		Address:  req.Address,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Cost:     *req.Cost,
		Rating:   req.Rating,
	}
}
