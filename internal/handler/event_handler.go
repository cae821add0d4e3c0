package handler

import (
	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/service"
	"github.com/eventify/eventify-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	// Image is optional on create.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	event, err := h.eventService.Create(req, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created"))
}

func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	events, err := h.eventService.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(events, ""))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	event, err := h.eventService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(event, ""))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	event, err := h.eventService.Update(id, req, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(event, "Event updated"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	if err := h.eventService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Event deleted"))
}
