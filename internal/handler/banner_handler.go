package handler

import (
	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/service"
	"github.com/eventify/eventify-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type BannerHandler struct {
	bannerService *service.BannerService
	validator     *utils.Validator
}

func NewBannerHandler(bannerService *service.BannerService, validator *utils.Validator) *BannerHandler {
	return &BannerHandler{
		bannerService: bannerService,
		validator:     validator,
	}
}

func (h *BannerHandler) CreateBanner(c *fiber.Ctx) error {
	var req models.BannerRequest
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

	banner, err := h.bannerService.Create(req, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(banner, "Banner created"))
}

func (h *BannerHandler) GetBanners(c *fiber.Ctx) error {
	banners, err := h.bannerService.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(banners, ""))
}

func (h *BannerHandler) UpdateBanner(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid banner ID"))
	}

	var req models.UpdateBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	banner, err := h.bannerService.Update(id, req, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(banner, "Banner updated"))
}

func (h *BannerHandler) DeleteBanner(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid banner ID"))
	}

	if err := h.bannerService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Banner deleted"))
}
