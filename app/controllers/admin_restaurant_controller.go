package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/altofibra/catalog/app/models"
	"github.com/altofibra/catalog/app/repository"
	"github.com/altofibra/catalog/internal/pkg/schedule"
)

// AdminRestaurantController manages the restaurant configuration
// record, including the weekly opening schedule.
type AdminRestaurantController struct {
	restaurantRepo repository.RestaurantRepository
}

// NewAdminRestaurantController creates a new admin restaurant controller
func NewAdminRestaurantController(restaurantRepo repository.RestaurantRepository) *AdminRestaurantController {
	return &AdminRestaurantController{restaurantRepo: restaurantRepo}
}

type restaurantRequest struct {
	Name     string        `json:"name"`
	Phone    string        `json:"phone"`
	WhatsApp string        `json:"whatsapp"`
	Address  string        `json:"address"`
	Schedule schedule.Week `json:"schedule"`
}

type restaurantResponse struct {
	*models.Restaurant
	Schedule        schedule.Week `json:"schedule"`
	SchedulePreview string        `json:"schedule_preview"`
}

func (arc *AdminRestaurantController) respond(c *fiber.Ctx, restaurant *models.Restaurant) error {
	week := schedule.Decode(restaurant.ScheduleJSON)
	return c.JSON(restaurantResponse{
		Restaurant:      restaurant,
		Schedule:        week,
		SchedulePreview: schedule.Preview(week),
	})
}

// HandleGet returns the settings record with the schedule decoded
// into its editable form.
func (arc *AdminRestaurantController) HandleGet(c *fiber.Ctx) error {
	restaurant, err := arc.restaurantRepo.GetActive()
	if err != nil {
		return writeError(c, err)
	}
	return arc.respond(c, restaurant)
}

// HandleUpdate saves the settings record. The schedule arrives in
// decoded form and is re-encoded through the codec, so whatever shape
// was stored before, the current one is what gets persisted.
func (arc *AdminRestaurantController) HandleUpdate(c *fiber.Ctx) error {
	var req restaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	restaurant, err := arc.restaurantRepo.GetActive()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return writeError(c, err)
		}
		restaurant = &models.Restaurant{Active: true}
	}

	restaurant.Name = req.Name
	restaurant.Phone = req.Phone
	restaurant.WhatsApp = req.WhatsApp
	restaurant.Address = req.Address

	week := req.Schedule
	if week == nil {
		week = schedule.DefaultWeek()
	}
	encoded, err := schedule.Encode(week)
	if err != nil {
		return badRequest(c, "invalid schedule")
	}
	restaurant.ScheduleJSON = datatypes.JSON(encoded)

	if err := restaurant.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := arc.restaurantRepo.Save(restaurant); err != nil {
		return writeError(c, err)
	}
	invalidateMenuCache()
	return arc.respond(c, restaurant)
}
