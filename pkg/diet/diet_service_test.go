package diet

import (
	"Fitness-Coach-API/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planRequest(age int, sex string, heightCm, weightKg float64, activity, goal string) domain.DietPlanRequest {
	return domain.DietPlanRequest{
		Age:           &age,
		Sex:           sex,
		HeightCm:      &heightCm,
		WeightKg:      &weightKg,
		ActivityLevel: activity,
		Goal:          goal,
	}
}

func TestDietService_ComputePlan(t *testing.T) {
	tests := []struct {
		name string
		req  domain.DietPlanRequest
		want [4]int // target, protein, carbs, fat
	}{
		{
			// BMR 1780, TDEE 2759
			name: "male moderate maintain",
			req:  planRequest(30, "male", 180, 80, "moderate", "maintain"),
			want: [4]int{2759, 207, 276, 92},
		},
		{
			name: "male moderate gain",
			req:  planRequest(30, "male", 180, 80, "moderate", "gain"),
			want: [4]int{3059, 229, 306, 102},
		},
		{
			name: "male moderate lose",
			req:  planRequest(30, "male", 180, 80, "moderate", "lose"),
			want: [4]int{2259, 169, 226, 75},
		},
		{
			// BMR 1351.5, TDEE 1858.3125
			name: "female light maintain",
			req:  planRequest(40, "female", 170, 65, "light", "maintain"),
			want: [4]int{1858, 139, 186, 62},
		},
		{
			// TDEE 1614.3 minus 500 falls under the floor
			name: "female sedentary lose clamps to floor",
			req:  planRequest(25, "female", 165, 60, "sedentary", "lose"),
			want: [4]int{1200, 90, 120, 40},
		},
		{
			name: "unknown goal treated as maintain",
			req:  planRequest(30, "male", 180, 80, "moderate", "bulk"),
			want: [4]int{2759, 207, 276, 92},
		},
		{
			name: "sex is case insensitive",
			req:  planRequest(30, "MALE", 180, 80, "moderate", "maintain"),
			want: [4]int{2759, 207, 276, 92},
		},
		{
			name: "zero body metrics still floor",
			req:  planRequest(0, "female", 0, 0, "very_active", "maintain"),
			want: [4]int{1200, 90, 120, 40},
		},
	}

	svc := NewDietService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := svc.ComputePlan(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, [4]int{plan.TargetCalories, plan.ProteinG, plan.CarbsG, plan.FatG})
			assert.Equal(t, tips, plan.Tips)
		})
	}
}

func TestDietService_ComputePlanInvalidInput(t *testing.T) {
	svc := NewDietService()

	_, err := svc.ComputePlan(planRequest(30, "other", 180, 80, "moderate", "maintain"))
	assert.ErrorIs(t, err, domain.ErrInvalidSex)

	_, err = svc.ComputePlan(planRequest(30, "male", 180, 80, "extreme", "maintain"))
	assert.ErrorIs(t, err, domain.ErrInvalidActivityLevel)

	_, err = svc.ComputePlan(planRequest(30, "male", 180, 80, "Moderate", "maintain"))
	assert.ErrorIs(t, err, domain.ErrInvalidActivityLevel)

	// sex is checked first
	_, err = svc.ComputePlan(planRequest(30, "other", 180, 80, "extreme", "maintain"))
	assert.ErrorIs(t, err, domain.ErrInvalidSex)
}

func TestDietService_TipsAreStable(t *testing.T) {
	svc := NewDietService()
	req := planRequest(30, "male", 180, 80, "moderate", "maintain")

	first, err := svc.ComputePlan(req)
	require.NoError(t, err)
	first.Tips[0] = "changed"

	second, err := svc.ComputePlan(req)
	require.NoError(t, err)
	assert.Len(t, second.Tips, 3)
	assert.Equal(t, "Aim for whole foods: lean protein, veggies, fruits, whole grains", second.Tips[0])
}

func TestBMR(t *testing.T) {
	assert.InDelta(t, 1780.0, BMR("male", 80, 180, 30), 1e-9)
	assert.InDelta(t, 1614.0, BMR("female", 80, 180, 30), 1e-9)
}

func TestTargetCalories(t *testing.T) {
	assert.Equal(t, 2000.0, TargetCalories(2500, "lose"))
	assert.Equal(t, 2800.0, TargetCalories(2500, "gain"))
	assert.Equal(t, 2500.0, TargetCalories(2500, "maintain"))
	assert.Equal(t, 2500.0, TargetCalories(2500, ""))
	assert.Equal(t, 1200.0, TargetCalories(1500, "lose"))
	assert.Equal(t, 1200.0, TargetCalories(-100, "gain"))
}

func TestActivityFactor(t *testing.T) {
	for level, want := range map[string]float64{
		"sedentary":   1.2,
		"light":       1.375,
		"moderate":    1.55,
		"active":      1.725,
		"very_active": 1.9,
	} {
		got, ok := ActivityFactor(level)
		assert.True(t, ok, level)
		assert.Equal(t, want, got, level)
	}

	_, ok := ActivityFactor("extreme")
	assert.False(t, ok)
}

func TestRoundHalfToEven(t *testing.T) {
	assert.Equal(t, 2, round(2.5))
	assert.Equal(t, 4, round(3.5))
	assert.Equal(t, 3, round(2.51))
}
