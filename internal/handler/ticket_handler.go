package handler

import (
	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/service"
	"github.com/eventify/eventify-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type TicketHandler struct {
	ticketService *service.TicketService
	validator     *utils.Validator
}

func NewTicketHandler(ticketService *service.TicketService, validator *utils.Validator) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
		validator:     validator,
	}
}

func (h *TicketHandler) BookTicket(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.BookTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	ticket, err := h.ticketService.Book(userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(ticket, "Ticket booked"))
}

func (h *TicketHandler) GetMyTickets(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	tickets, err := h.ticketService.GetUserTickets(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(tickets, ""))
}

func (h *TicketHandler) GetAllTickets(c *fiber.Ctx) error {
	tickets, err := h.ticketService.GetAllTickets()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(tickets, ""))
}

func (h *TicketHandler) UpdateTicket(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid ticket ID"))
	}

	var req models.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	ticket, err := h.ticketService.UpdateStatus(id, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(ticket, "Ticket updated"))
}

func (h *TicketHandler) DeleteTicket(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid ticket ID"))
	}

	if err := h.ticketService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Ticket deleted"))
}
