package food

import (
	"Fitness-Coach-API/entities"
	"Fitness-Coach-API/pkg/store"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

type (
	FoodRepository interface {
		GetFoodItems(ctx context.Context, name string) ([]*entities.FoodItem, error)
	}

	foodRepository struct {
		store store.DocumentStore
	}
)

func NewFoodRepository(store store.DocumentStore) FoodRepository {
	return &foodRepository{
		store: store,
	}
}

// GetFoodItems lists the catalog, restricted to an exact name when name is
// not empty.
func (r *foodRepository) GetFoodItems(ctx context.Context, name string) ([]*entities.FoodItem, error) {
	filter := map[string]any{}
	if name != "" {
		filter["name"] = name
	}

	docs, err := r.store.GetDocuments(ctx, entities.CollectionFoodItem, filter)
	if err != nil {
		return nil, err
	}

	foodItems := make([]*entities.FoodItem, 0, len(docs))
	for _, doc := range docs {
		var foodItem entities.FoodItem
		if err := bson.Unmarshal(doc, &foodItem); err != nil {
			return nil, fmt.Errorf("decode food item: %w", err)
		}
		foodItems = append(foodItems, &foodItem)
	}
	return foodItems, nil
}
