package diet

import (
	"Fitness-Coach-API/domain"
	"math"
	"strings"
)

const (
	MinTargetCalories = 1200

	loseDeficit = 500
	gainSurplus = 300

	proteinShare = 0.30
	carbsShare   = 0.40
	fatShare     = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

var activityFactors = map[string]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

var tips = []string{
	"Aim for whole foods: lean protein, veggies, fruits, whole grains",
	"Drink enough water (2-3L/day)",
	"Prioritize protein in each meal",
}

type (
	DietService interface {
		ComputePlan(req domain.DietPlanRequest) (domain.DietPlanResponse, error)
	}

	dietService struct{}
)

func NewDietService() DietService {
	return &dietService{}
}

func (s *dietService) ComputePlan(req domain.DietPlanRequest) (domain.DietPlanResponse, error) {
	sex := strings.ToLower(req.Sex)
	if sex != domain.SexMale && sex != domain.SexFemale {
		return domain.DietPlanResponse{}, domain.ErrInvalidSex
	}
	factor, ok := ActivityFactor(req.ActivityLevel)
	if !ok {
		return domain.DietPlanResponse{}, domain.ErrInvalidActivityLevel
	}

	bmr := BMR(sex, deref(req.WeightKg), deref(req.HeightCm), float64(derefInt(req.Age)))
	target := TargetCalories(bmr*factor, req.Goal)

	return domain.DietPlanResponse{
		TargetCalories: round(target),
		ProteinG:       round(proteinShare * target / kcalPerGramProtein),
		CarbsG:         round(carbsShare * target / kcalPerGramCarbs),
		FatG:           round(fatShare * target / kcalPerGramFat),
		Tips:           append([]string(nil), tips...),
	}, nil
}

// BMR is the Mifflin-St Jeor basal metabolic rate. sex must already be
// lowercased.
func BMR(sex string, weightKg, heightCm, age float64) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*age
	if sex == domain.SexMale {
		return base + 5
	}
	return base - 161
}

func ActivityFactor(level string) (float64, bool) {
	factor, ok := activityFactors[level]
	return factor, ok
}

// TargetCalories adjusts tdee for goal and applies the 1200 kcal floor. Any
// goal other than lose or gain keeps tdee.
func TargetCalories(tdee float64, goal string) float64 {
	target := tdee
	switch goal {
	case domain.GoalLose:
		target = tdee - loseDeficit
	case domain.GoalGain:
		target = tdee + gainSurplus
	}
	return math.Max(MinTargetCalories, target)
}

// round rounds half to even.
func round(x float64) int {
	return int(math.RoundToEven(x))
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
