package meal

import (
	"Fitness-Coach-API/entities"
	"Fitness-Coach-API/pkg/store"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

type (
	MealRepository interface {
		CreateMealLog(ctx context.Context, mealLog *entities.MealLog) (string, error)
		GetMealLogs(ctx context.Context, userID string, date string) ([]*entities.MealLog, error)
	}

	mealRepository struct {
		store store.DocumentStore
	}
)

func NewMealRepository(store store.DocumentStore) MealRepository {
	return &mealRepository{
		store: store,
	}
}

func (r *mealRepository) CreateMealLog(ctx context.Context, mealLog *entities.MealLog) (string, error) {
	return r.store.CreateDocument(ctx, entities.CollectionMealLog, mealLog)
}

func (r *mealRepository) GetMealLogs(ctx context.Context, userID string, date string) ([]*entities.MealLog, error) {
	docs, err := r.store.GetDocuments(ctx, entities.CollectionMealLog, map[string]any{
		"user_id": userID,
		"date":    date,
	})
	if err != nil {
		return nil, err
	}

	mealLogs := make([]*entities.MealLog, 0, len(docs))
	for _, doc := range docs {
		var mealLog entities.MealLog
		if err := bson.Unmarshal(doc, &mealLog); err != nil {
			return nil, fmt.Errorf("decode meal log: %w", err)
		}
		mealLogs = append(mealLogs, &mealLog)
	}
	return mealLogs, nil
}
