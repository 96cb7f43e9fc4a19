package exercise

import (
	"Fitness-Coach-API/domain"
	"strings"
)

type formEntry struct {
	cues     []string
	mistakes []string
}

// formLibrary is the built-in guidance catalog, keyed by normalized name.
var formLibrary = map[string]formEntry{
	"squat": {
		cues: []string{
			"Feet shoulder-width, toes slightly out",
			"Brace core, neutral spine",
			"Knees track over toes",
			"Sit back and down until thighs are parallel",
		},
		mistakes: []string{
			"Heels lifting",
			"Knees collapsing in",
			"Rounding the back",
		},
	},
	"push-up": {
		cues: []string{
			"Hands under shoulders",
			"Body in a straight line",
			"Elbows ~45 degrees",
			"Chest to floor, full lockout",
		},
		mistakes: []string{
			"Sagging hips",
			"Flaring elbows",
			"Half reps",
		},
	},
	"deadlift": {
		cues: []string{
			"Bar over mid-foot",
			"Hinge at hips, flat back",
			"Lats tight, bar close",
			"Push the floor, stand tall",
		},
		mistakes: []string{
			"Rounding lower back",
			"Jerking the bar",
			"Bar drifting forward",
		},
	},
}

type (
	ExerciseService interface {
		GetFormGuide(exercise string) (domain.FormGuideResponse, error)
	}

	exerciseService struct{}
)

func NewExerciseService() ExerciseService {
	return &exerciseService{}
}

func (s *exerciseService) GetFormGuide(exercise string) (domain.FormGuideResponse, error) {
	name := NormalizeName(exercise)
	entry, ok := formLibrary[name]
	if !ok {
		return domain.FormGuideResponse{}, domain.ErrExerciseNotFound
	}

	return domain.FormGuideResponse{
		Name:     name,
		Cues:     append([]string(nil), entry.cues...),
		Mistakes: append([]string(nil), entry.mistakes...),
	}, nil
}

func NormalizeName(exercise string) string {
	return strings.ToLower(strings.TrimSpace(exercise))
}
