package handler

import (
	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/service"
	"github.com/eventify/eventify-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	messageService *service.MessageService
	validator      *utils.Validator
}

func NewMessageHandler(messageService *service.MessageService, validator *utils.Validator) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		validator:      validator,
	}
}

func (h *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	var req models.MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	message, err := h.messageService.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(message, "Message sent"))
}

func (h *MessageHandler) GetMessages(c *fiber.Ctx) error {
	messages, err := h.messageService.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(messages, ""))
}

func (h *MessageHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid message ID"))
	}

	if err := h.messageService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Message deleted"))
}
