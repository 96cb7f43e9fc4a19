package entities

type User struct {
	ID       string   `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string   `bson:"name" json:"name" validate:"required"`
	Email    string   `bson:"email" json:"email" validate:"required"`
	Age      *int     `bson:"age,omitempty" json:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	HeightCm *float64 `bson:"height_cm,omitempty" json:"height_cm,omitempty" validate:"omitempty,gte=0"`
	WeightKg *float64 `bson:"weight_kg,omitempty" json:"weight_kg,omitempty" validate:"omitempty,gte=0"`
	IsActive bool     `bson:"is_active" json:"is_active"`

	Timestamp `bson:",inline"`
}

func NewUser(name, email string) *User {
	return &User{Name: name, Email: email, IsActive: true}
}
