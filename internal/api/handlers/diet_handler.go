package handlers

import (
	"Fitness-Coach-API/domain"
	"Fitness-Coach-API/internal/api/presenters"
	"Fitness-Coach-API/pkg/diet"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DietHandler interface {
		CreatePlan(c *fiber.Ctx) error
	}

	dietHandler struct {
		dietService diet.DietService
		validator   *validator.Validate
	}
)

func NewDietHandler(dietService diet.DietService, validator *validator.Validate) DietHandler {
	return &dietHandler{
		dietService: dietService,
		validator:   validator,
	}
}

func (h *dietHandler) CreatePlan(c *fiber.Ctx) error {
	req := new(domain.DietPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedValidation, err)
	}

	res, err := h.dietService.ComputePlan(*req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSex) || errors.Is(err, domain.ErrInvalidActivityLevel) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
