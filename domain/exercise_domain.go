package domain

import "errors"

var (
	MessageExerciseNotFound = "Exercise not found. Try squat, push-up, or deadlift"

	ErrExerciseNotFound = errors.New("exercise not found")
)

type (
	FormGuideRequest struct {
		Exercise string `json:"exercise"`
	}

	FormGuideResponse struct {
		Name     string   `json:"name"`
		Cues     []string `json:"cues"`
		Mistakes []string `json:"mistakes"`
	}
)
