package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("ADMIN_API_KEY", "test-admin-key")

	app := fiber.New()
	app.Get("/admin", RequireAdminKey(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireAdminKeyMissingKey(t *testing.T) {
	app := newProtectedApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminKeyWrongKey(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set("X-API-Key", "not-the-key")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminKeyHeaderVariants(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set("X-API-Key", "test-admin-key")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer test-admin-key")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
