package food

import (
	"Fitness-Coach-API/domain"
	"context"
	"strings"
)

type (
	FoodService interface {
		GetFoodItems(ctx context.Context, query domain.FoodItemQuery) ([]domain.FoodItemResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
	}
}

func (s *foodService) GetFoodItems(ctx context.Context, query domain.FoodItemQuery) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx, strings.TrimSpace(query.Name))
	if err != nil {
		return nil, err
	}

	result := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		result = append(result, domain.FoodItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Calories: item.Calories,
			ProteinG: item.ProteinG,
			CarbsG:   item.CarbsG,
			FatG:     item.FatG,
			Serving:  item.Serving,
		})
	}
	return result, nil
}
