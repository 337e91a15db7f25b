package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique and query indexes the services rely on.
// Safe to call on every boot; Mongo treats existing indexes as a no-op.
func EnsureIndexes(database *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"game_modes": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		"packs": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		"cards": {
			{Keys: bson.D{{Key: "packId", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "ageRating", Value: 1}, {Key: "isActive", Value: 1}}},
		},
		"admin_users": {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique},
		},
		"app_configs": {
			{Keys: bson.D{{Key: "key", Value: 1}}, Options: unique},
		},
	}

	for collection, models := range indexes {
		if _, err := database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
