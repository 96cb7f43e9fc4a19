package entities

import "time"

const (
	CollectionUser     = "user"
	CollectionFoodItem = "fooditem"
	CollectionMealLog  = "meallog"
	CollectionExercise = "exercise"
)

// Collections lists the persisted collections in declaration order.
var Collections = []string{
	CollectionUser,
	CollectionFoodItem,
	CollectionMealLog,
	CollectionExercise,
}

type Timestamp struct {
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
