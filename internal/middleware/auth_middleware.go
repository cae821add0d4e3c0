package middleware

import (
	"github.com/eventify/eventify-backend/internal/models"
	jwtPkg "github.com/eventify/eventify-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

const TokenCookie = "token"

// RequireRole is the single authorization gate: it verifies the token
// cookie and admits the request only when the token's role matches.
// Missing or invalid tokens get 401, a valid token with the wrong role
// gets 403.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(TokenCookie)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("No token, authorization denied"))
		}

		claims, err := jwtPkg.Validate(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		if claims.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Access denied"))
		}

		c.Locals("userID", claims.UserID)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
