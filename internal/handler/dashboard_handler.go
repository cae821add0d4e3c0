package handler

import (
	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(stats, ""))
}
