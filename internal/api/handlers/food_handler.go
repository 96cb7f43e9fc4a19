package handlers

import (
	"Fitness-Coach-API/domain"
	"Fitness-Coach-API/internal/api/presenters"
	"Fitness-Coach-API/pkg/food"

	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoodItems(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
	}
)

func NewFoodHandler(foodService food.FoodService) FoodHandler {
	return &foodHandler{
		foodService: foodService,
	}
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	query := new(domain.FoodItemQuery)
	if err := c.QueryParser(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems)
	}

	res, err := h.foodService.GetFoodItems(c.Context(), *query)
	if err != nil {
		return err
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
