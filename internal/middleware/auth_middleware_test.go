package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventify/eventify-backend/internal/middleware"
	"github.com/eventify/eventify-backend/internal/models"
	jwtPkg "github.com/eventify/eventify-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", middleware.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString(fmt.Sprintf("admin %d", c.Locals("userID").(uint)))
	})
	app.Get("/user", middleware.RequireRole(models.RoleUser), func(c *fiber.Ctx) error {
		return c.SendString(fmt.Sprintf("user %d", c.Locals("userID").(uint)))
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newGatedApp()

	userToken, err := jwtPkg.Generate(7, models.RoleUser)
	require.NoError(t, err)
	adminToken, err := jwtPkg.Generate(1, models.RoleAdmin)
	require.NoError(t, err)

	t.Run("no token", func(t *testing.T) {
		resp := doRequest(t, app, "/admin", "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := doRequest(t, app, "/admin", "not-a-jwt")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("user token on admin route", func(t *testing.T) {
		resp := doRequest(t, app, "/admin", userToken)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin token on user route", func(t *testing.T) {
		resp := doRequest(t, app, "/user", adminToken)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("matching roles are admitted", func(t *testing.T) {
		resp := doRequest(t, app, "/admin", adminToken)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp = doRequest(t, app, "/user", userToken)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "other-secret")
		foreign, err := jwtPkg.Generate(1, models.RoleAdmin)
		require.NoError(t, err)
		t.Setenv("JWT_SECRET", "test-secret")

		resp := doRequest(t, app, "/admin", foreign)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
