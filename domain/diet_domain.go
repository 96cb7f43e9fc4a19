package domain

import "errors"

const (
	SexMale   = "male"
	SexFemale = "female"

	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"

	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

var (
	ErrInvalidSex           = errors.New("sex must be 'male' or 'female'")
	ErrInvalidActivityLevel = errors.New("invalid activity_level")
)

type (
	DietPlanRequest struct {
		Age           *int     `json:"age" validate:"required,gte=0,lte=120"`
		Sex           string   `json:"sex"`
		HeightCm      *float64 `json:"height_cm" validate:"required,gte=0"`
		WeightKg      *float64 `json:"weight_kg" validate:"required,gte=0"`
		ActivityLevel string   `json:"activity_level"`
		Goal          string   `json:"goal"`
	}

	DietPlanResponse struct {
		TargetCalories int      `json:"target_calories"`
		ProteinG       int      `json:"protein_g"`
		CarbsG         int      `json:"carbs_g"`
		FatG           int      `json:"fat_g"`
		Tips           []string `json:"tips"`
	}
)
