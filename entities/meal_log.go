package entities

type MealItem struct {
	Name     string  `bson:"name" json:"name"`
	Calories float64 `bson:"calories" json:"calories" validate:"gte=0"`
	Quantity float64 `bson:"quantity" json:"quantity" validate:"gte=0"`
}

// MealLog is one user's intake entry for a date. TotalCalories is computed
// when the log is created and never recomputed from Items.
type MealLog struct {
	ID            string     `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        string     `bson:"user_id" json:"user_id" validate:"required"`
	Date          string     `bson:"date" json:"date"` // YYYY-MM-DD
	Items         []MealItem `bson:"items" json:"items" validate:"dive"`
	TotalCalories float64    `bson:"total_calories" json:"total_calories" validate:"gte=0"`
	Notes         *string    `bson:"notes,omitempty" json:"notes,omitempty"`

	Timestamp `bson:",inline"`
}
