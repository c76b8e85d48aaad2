package controllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/altofibra/catalog/app/repository"
	"github.com/altofibra/catalog/internal/pkg/cache"
)

// Cache keys for the rendered public data. Any catalog write drops
// them; the next public request repopulates. Menu data is keyed per
// weekday because the daily specials differ by day.
const (
	landingCacheKey    = "public:landing:v1"
	menuCacheKeyPrefix = "public:menu:v1"
)

// Seams over the cache package, swapped out in tests.
var (
	cacheGet       = cache.Get
	cacheSet       = cache.Set
	cacheDelete    = cache.Delete
	cacheDeletePat = cache.DeleteByPattern
)

func menuCacheKey(weekday int) string {
	return fmt.Sprintf("%s:%d", menuCacheKeyPrefix, weekday)
}

func invalidateCatalogCache() {
	if err := cacheDelete(landingCacheKey); err != nil {
		log.Printf("Warning: could not invalidate landing cache: %v", err)
	}
}

func invalidateMenuCache() {
	if err := cacheDeletePat(menuCacheKeyPrefix + ":*"); err != nil {
		log.Printf("Warning: could not invalidate menu cache: %v", err)
	}
}

// listResponse is the shared envelope for admin list endpoints. The
// total lets the dashboard show counts without a second request.
func listResponse(items interface{}, total int64) fiber.Map {
	return fiber.Map{
		"data": items,
		"meta": fiber.Map{"total": total},
	}
}

// parseIDParam reads the numeric :id route parameter.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": code, "message": message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusBadRequest, "bad_request", message)
}

func notFound(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusNotFound, "not_found", message)
}

// writeError maps repository errors to the response the admin UI
// expects: missing rows are 404, entities still referenced by a
// promotion are 409, anything else is a 500.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(c, "record not found")
	case errors.Is(err, repository.ErrEntityInUse):
		return jsonError(c, fiber.StatusConflict, "conflict", err.Error())
	default:
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", err.Error())
	}
}

func validationError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", verrs.Error())
	}
	return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
}
