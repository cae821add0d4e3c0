package handler

import (
	"time"

	"github.com/eventify/eventify-backend/internal/middleware"
	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/service"
	jwtPkg "github.com/eventify/eventify-backend/pkg/jwt"
	"github.com/eventify/eventify-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		return respondError(c, err)
	}

	setTokenCookie(c, resp.Token)
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(resp, "User registered"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.LoginUser(req)
	if err != nil {
		return respondError(c, err)
	}

	setTokenCookie(c, resp.Token)
	return c.JSON(models.SuccessResponse(resp, "Login successful"))
}

func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.LoginAdmin(req)
	if err != nil {
		return respondError(c, err)
	}

	setTokenCookie(c, resp.Token)
	return c.JSON(models.SuccessResponse(resp, "Admin login successful"))
}

func setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(jwtPkg.TokenExpiry),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
