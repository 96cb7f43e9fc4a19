package presenters

import (
	"Fitness-Coach-API/domain"
	"Fitness-Coach-API/internal/logger"
	"Fitness-Coach-API/internal/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int) error {
	return c.Status(statusCode).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(domain.ErrorResponse{
		Detail: message,
	})
}

// ValidationErrorResponse answers 422 with one entry per offending field when
// err came from body decoding or the validator.
func ValidationErrorResponse(c *fiber.Ctx, message string, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse(c, fiberErr.Code, fiberErr.Message)
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(domain.ErrorResponse{
		Detail: message,
		Errors: utils.FieldErrors(err),
	})
}

// ErrorHandler is the app-wide fallback for errors returned by handlers.
// Anything that is not a *fiber.Error is logged and reported as a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse(c, fiberErr.Code, fiberErr.Message)
	}

	logger.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError)
}
