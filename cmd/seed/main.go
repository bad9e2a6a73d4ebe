package main

import (
	"context"
	"log"
	"time"

	"travel-planner/internal/config"
	"travel-planner/internal/database"
	"travel-planner/internal/models"
	"travel-planner/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	userIDs := seedUsers(ctx, mongoDB.Database)
	travelIDs := seedTravels(ctx, mongoDB.Database, userIDs)
	seedFavorites(ctx, mongoDB.Database, userIDs, travelIDs)
	seedNotifications(ctx, mongoDB.Database, userIDs)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	password1, _ := auth.HashPassword("password123")
	password2, _ := auth.HashPassword("password456")

	now := time.Now()

	users := []interface{}{
		models.User{
			Email:     "hanako@example.com",
			Password:  password1,
			Name:      "Hanako Yamada",
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.User{
			Email:     "taro@example.com",
			Password:  password2,
			Name:      "Taro Tanaka",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

func seedTravels(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) []primitive.ObjectID {
	collection := db.Collection("travels")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear travels: %v", err)
	}

	now := time.Now()
	rating := 5

	travels := []interface{}{
		models.Travel{
			UserID:       userIDs[0],
			Title:        "Spring in Kyoto",
			Description:  "Cherry blossom season with temple visits",
			Destination:  "Kyoto",
			StartDate:    now.AddDate(0, 2, 0),
			EndDate:      now.AddDate(0, 2, 4),
			Budget:       120000,
			Participants: 2,
			Status:       models.StatusConfirmed,
			Activities: []models.Activity{
				{
					ID:       primitive.NewObjectID(),
					Name:     "Fushimi Inari shrine",
					Date:     now.AddDate(0, 2, 1),
					Location: "Kyoto",
					Cost:     0,
					Category: models.CategorySightseeing,
				},
				{
					ID:       primitive.NewObjectID(),
					Name:     "Kaiseki dinner",
					Date:     now.AddDate(0, 2, 1),
					Location: "Gion",
					Cost:     15000,
					Category: models.CategoryFood,
				},
			},
			Accommodations: []models.Accommodation{
				{
					ID:       primitive.NewObjectID(),
					Name:     "Gion Ryokan",
					Type:     models.TypeRyokan,
					Address:  "Higashiyama-ku, Kyoto",
					CheckIn:  now.AddDate(0, 2, 0),
					CheckOut: now.AddDate(0, 2, 4),
					Cost:     64000,
					Rating:   &rating,
				},
			},
			CreatedAt: now.Add(-72 * time.Hour),
			UpdatedAt: now.Add(-24 * time.Hour),
		},
		models.Travel{
			UserID:         userIDs[0],
			Title:          "Hokkaido Ski Trip",
			Description:    "Powder snow in Niseko",
			Destination:    "Niseko",
			StartDate:      now.AddDate(0, 5, 0),
			EndDate:        now.AddDate(0, 5, 7),
			Budget:         250000,
			Participants:   4,
			Status:         models.StatusPlanning,
			Activities:     []models.Activity{},
			Accommodations: []models.Accommodation{},
			CreatedAt:      now.Add(-48 * time.Hour),
			UpdatedAt:      now.Add(-48 * time.Hour),
		},
		models.Travel{
			UserID:         userIDs[1],
			Title:          "Okinawa Beach Week",
			Description:    "Diving and island hopping",
			Destination:    "Okinawa",
			StartDate:      now.AddDate(0, 1, 0),
			EndDate:        now.AddDate(0, 1, 6),
			Budget:         180000,
			Participants:   2,
			Status:         models.StatusPlanning,
			Activities:     []models.Activity{},
			Accommodations: []models.Accommodation{},
			CreatedAt:      now.Add(-24 * time.Hour),
			UpdatedAt:      now.Add(-24 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, travels)
	if err != nil {
		log.Fatalf("Failed to seed travels: %v", err)
	}

	log.Printf("Seeded %d travels", len(result.InsertedIDs))

	var travelIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		travelIDs = append(travelIDs, id.(primitive.ObjectID))
	}

	return travelIDs
}

func seedFavorites(ctx context.Context, db *mongo.Database, userIDs, travelIDs []primitive.ObjectID) {
	collection := db.Collection("favorites")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear favorites: %v", err)
	}

	favorites := []interface{}{
		models.Favorite{
			UserID:    userIDs[0],
			TravelID:  travelIDs[0],
			CreatedAt: time.Now().Add(-12 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, favorites)
	if err != nil {
		log.Fatalf("Failed to seed favorites: %v", err)
	}

	log.Printf("Seeded %d favorites", len(result.InsertedIDs))
}

func seedNotifications(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) {
	collection := db.Collection("notifications")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear notifications: %v", err)
	}

	now := time.Now()

	notifications := []interface{}{
		models.Notification{
			UserID:    userIDs[0],
			Title:     "Trip created",
			Message:   `Your trip "Spring in Kyoto" to Kyoto was created.`,
			Type:      models.NotificationInfo,
			Read:      true,
			CreatedAt: now.Add(-72 * time.Hour),
		},
		models.Notification{
			UserID:    userIDs[0],
			Title:     "Added to favorites",
			Message:   `"Spring in Kyoto" is now in your favorites.`,
			Type:      models.NotificationSuccess,
			Read:      false,
			CreatedAt: now.Add(-12 * time.Hour),
		},
		models.Notification{
			UserID:    userIDs[1],
			Title:     "Trip created",
			Message:   `Your trip "Okinawa Beach Week" to Okinawa was created.`,
			Type:      models.NotificationInfo,
			Read:      false,
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, notifications)
	if err != nil {
		log.Fatalf("Failed to seed notifications: %v", err)
	}

	log.Printf("Seeded %d notifications", len(result.InsertedIDs))
}
