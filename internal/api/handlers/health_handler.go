package handlers

import (
	"Fitness-Coach-API/domain"
	"Fitness-Coach-API/internal/api/presenters"
	"Fitness-Coach-API/pkg/health"

	"github.com/gofiber/fiber/v2"
)

type (
	HealthHandler interface {
		Root(c *fiber.Ctx) error
		Diagnostics(c *fiber.Ctx) error
		Schema(c *fiber.Ctx) error
	}

	healthHandler struct {
		healthService health.HealthService
	}
)

func NewHealthHandler(healthService health.HealthService) HealthHandler {
	return &healthHandler{
		healthService: healthService,
	}
}

func (h *healthHandler) Root(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.MessageResponse{Message: domain.MessageBackendRunning}, fiber.StatusOK)
}

func (h *healthHandler) Diagnostics(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.healthService.Diagnose(c.Context()), fiber.StatusOK)
}

func (h *healthHandler) Schema(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.healthService.Schemas(), fiber.StatusOK)
}
