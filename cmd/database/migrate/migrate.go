package migration

import (
	"Fitness-Coach-API/entities"
	"Fitness-Coach-API/internal/logger"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var ErrNoDatabase = errors.New("no database to migrate")

// Indexes lists the secondary indexes created per collection.
var Indexes = map[string][]mongo.IndexModel{
	entities.CollectionUser: {
		{Keys: bson.D{{Key: "email", Value: 1}}},
	},
	entities.CollectionFoodItem: {
		{Keys: bson.D{{Key: "name", Value: 1}}},
	},
	entities.CollectionMealLog: {
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
	},
	entities.CollectionExercise: {
		{Keys: bson.D{{Key: "name", Value: 1}}},
	},
}

func Migrate(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return ErrNoDatabase
	}

	for _, collection := range entities.Collections {
		models := Indexes[collection]
		if len(models) == 0 {
			continue
		}
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			logger.Error("index creation failed", zap.String("collection", collection), zap.Error(err))
			return fmt.Errorf("migrate %s: %w", collection, err)
		}
	}

	logger.Info("Database migration complete")
	return nil
}
