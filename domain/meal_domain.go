package domain

type (
	MealItemRequest struct {
		Name     string   `json:"name"`
		Calories *float64 `json:"calories" validate:"omitempty,gte=0"`
		Quantity *float64 `json:"quantity" validate:"omitempty,gte=0"`
	}

	LogMealRequest struct {
		UserID string            `json:"user_id" validate:"required"`
		Date   string            `json:"date"`
		Items  []MealItemRequest `json:"items" validate:"required,dive"`
		Notes  *string           `json:"notes"`
	}

	LogMealResponse struct {
		LogID         string  `json:"log_id"`
		TotalCalories float64 `json:"total_calories"`
	}

	DaySummaryResponse struct {
		Date          string  `json:"date"`
		TotalCalories float64 `json:"total_calories"`
	}
)
