package handlers

import (
	"Fitness-Coach-API/domain"
	"Fitness-Coach-API/internal/api/presenters"
	"Fitness-Coach-API/pkg/exercise"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ExerciseHandler interface {
		GetFormGuide(c *fiber.Ctx) error
	}

	exerciseHandler struct {
		exerciseService exercise.ExerciseService
		validator       *validator.Validate
	}
)

func NewExerciseHandler(exerciseService exercise.ExerciseService, validator *validator.Validate) ExerciseHandler {
	return &exerciseHandler{
		exerciseService: exerciseService,
		validator:       validator,
	}
}

func (h *exerciseHandler) GetFormGuide(c *fiber.Ctx) error {
	req := new(domain.FormGuideRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedValidation, err)
	}

	res, err := h.exerciseService.GetFormGuide(req.Exercise)
	if err != nil {
		if errors.Is(err, domain.ErrExerciseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageExerciseNotFound)
		}
		return err
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
