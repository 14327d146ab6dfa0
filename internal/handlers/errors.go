package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/XenomaCode/milla13-api/internal/repositories"
	"github.com/XenomaCode/milla13-api/internal/services"
)

// respondError maps service-layer error classes onto HTTP statuses.
// Anything unclassified is reported as a backend failure.
func respondError(c *fiber.Ctx, message string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
