package handlers

import (
	"Fitness-Coach-API/domain"
	"Fitness-Coach-API/internal/api/presenters"
	"Fitness-Coach-API/pkg/meal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		LogMeal(c *fiber.Ctx) error
		GetDailySummary(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) LogMeal(c *fiber.Ctx) error {
	req := new(domain.LogMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedValidation, err)
	}

	res, err := h.mealService.LogMeal(c.Context(), *req)
	if err != nil {
		return err
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *mealHandler) GetDailySummary(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	date := c.Params("date")

	res, err := h.mealService.GetDailySummary(c.Context(), userID, date)
	if err != nil {
		return err
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
