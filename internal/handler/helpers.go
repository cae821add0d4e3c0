package handler

import (
	"errors"
	"strconv"

	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/service"
	"github.com/eventify/eventify-backend/pkg/storage"
	"github.com/gofiber/fiber/v2"
)

// errorStatus maps the service error taxonomy onto HTTP statuses.
// Anything unmapped is an internal error.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrEventHasTickets):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInsufficientTickets),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrImageRequired),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrCaptchaFailed),
		errors.Is(err, storage.ErrUnsupportedType):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		// Do not leak store internals to the client.
		return c.Status(status).JSON(models.ErrorResponse("Internal server error"))
	}
	return c.Status(status).JSON(models.ErrorResponse(err.Error()))
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func userIDFromContext(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok
}
