package controllers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/altofibra/catalog/app/repository"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})

	resp, respErr := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, respErr)
	return resp.StatusCode
}

func TestWriteErrorMapsRecordNotFound(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, statusFor(t, gorm.ErrRecordNotFound))
}

func TestWriteErrorMapsEntityInUseToConflict(t *testing.T) {
	assert.Equal(t, fiber.StatusConflict, statusFor(t, repository.ErrEntityInUse))
}

func TestWriteErrorDefaultsToInternalError(t *testing.T) {
	assert.Equal(t, fiber.StatusInternalServerError, statusFor(t, errors.New("boom")))
}

func TestParseIDParam(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.JSON(fiber.Map{"id": id})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/42", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
