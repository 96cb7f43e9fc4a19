package entities

type FoodItem struct {
	ID       string  `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string  `bson:"name" json:"name" validate:"required"`
	Calories float64 `bson:"calories" json:"calories" validate:"gte=0"`
	ProteinG float64 `bson:"protein_g" json:"protein_g" validate:"gte=0"`
	CarbsG   float64 `bson:"carbs_g" json:"carbs_g" validate:"gte=0"`
	FatG     float64 `bson:"fat_g" json:"fat_g" validate:"gte=0"`
	Serving  string  `bson:"serving,omitempty" json:"serving,omitempty"` // e.g. "100g", "1 cup"

	Timestamp `bson:",inline"`
}
