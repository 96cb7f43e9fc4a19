package domain

var (
	MessageFailedGetFoodItems = "failed to retrieve food items"
)

type (
	FoodItemQuery struct {
		Name string `query:"name"`
	}

	FoodItemResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
		ProteinG float64 `json:"protein_g"`
		CarbsG   float64 `json:"carbs_g"`
		FatG     float64 `json:"fat_g"`
		Serving  string  `json:"serving,omitempty"`
	}
)
