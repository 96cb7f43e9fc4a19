package meal

import (
	"Fitness-Coach-API/domain"
	"Fitness-Coach-API/entities"
	"Fitness-Coach-API/internal/logger"
	"context"

	"go.uber.org/zap"
)

type (
	MealService interface {
		LogMeal(ctx context.Context, req domain.LogMealRequest) (domain.LogMealResponse, error)
		GetDailySummary(ctx context.Context, userID string, date string) (domain.DaySummaryResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
	}
)

func NewMealService(mealRepository MealRepository) MealService {
	return &mealService{
		mealRepository: mealRepository,
	}
}

func (s *mealService) LogMeal(ctx context.Context, req domain.LogMealRequest) (domain.LogMealResponse, error) {
	items := make([]entities.MealItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, toMealItem(item))
	}
	total := TotalCalories(items)

	mealLog := &entities.MealLog{
		UserID:        req.UserID,
		Date:          req.Date,
		Items:         items,
		TotalCalories: total,
		Notes:         req.Notes,
	}

	logID, err := s.mealRepository.CreateMealLog(ctx, mealLog)
	if err != nil {
		return domain.LogMealResponse{}, err
	}
	logger.Debug("meal logged",
		zap.String("log_id", logID),
		zap.String("user_id", req.UserID),
		zap.Float64("total_calories", total),
	)

	return domain.LogMealResponse{
		LogID:         logID,
		TotalCalories: total,
	}, nil
}

// GetDailySummary adds up the stored total of every log for the day. Items
// are not re-read.
func (s *mealService) GetDailySummary(ctx context.Context, userID string, date string) (domain.DaySummaryResponse, error) {
	mealLogs, err := s.mealRepository.GetMealLogs(ctx, userID, date)
	if err != nil {
		return domain.DaySummaryResponse{}, err
	}

	var total float64
	for _, mealLog := range mealLogs {
		total += mealLog.TotalCalories
	}

	return domain.DaySummaryResponse{
		Date:          date,
		TotalCalories: total,
	}, nil
}

// toMealItem fills the defaults: absent calories count as 0, absent
// quantity as one serving.
func toMealItem(item domain.MealItemRequest) entities.MealItem {
	mealItem := entities.MealItem{
		Name:     item.Name,
		Quantity: 1,
	}
	if item.Calories != nil {
		mealItem.Calories = *item.Calories
	}
	if item.Quantity != nil {
		mealItem.Quantity = *item.Quantity
	}
	return mealItem
}

func TotalCalories(items []entities.MealItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Calories * item.Quantity
	}
	return total
}
