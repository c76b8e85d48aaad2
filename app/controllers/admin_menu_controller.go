package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altofibra/catalog/app/models"
	"github.com/altofibra/catalog/app/repository"
)

// AdminMenuController handles admin requests for menu categories,
// dishes and daily specials.
type AdminMenuController struct {
	menuRepo repository.MenuRepository
}

// NewAdminMenuController creates a new admin menu controller
func NewAdminMenuController(menuRepo repository.MenuRepository) *AdminMenuController {
	return &AdminMenuController{menuRepo: menuRepo}
}

// ---- categories ----

type categoryRequest struct {
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

func (req *categoryRequest) apply(category *models.MenuCategory) {
	category.Name = req.Name
	category.Icon = req.Icon
	category.SortOrder = req.SortOrder
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
}

func (amc *AdminMenuController) HandleListCategories(c *fiber.Ctx) error {
	categories, err := amc.menuRepo.GetAllCategories()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(categories)
}

func (amc *AdminMenuController) HandleGetCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid category id")
	}
	category, err := amc.menuRepo.GetCategoryByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(category)
}

func (amc *AdminMenuController) HandleCreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	category := &models.MenuCategory{IsActive: true}
	req.apply(category)
	if err := category.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := amc.menuRepo.CreateCategory(category); err != nil {
		return writeError(c, err)
	}
	invalidateMenuCache()
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (amc *AdminMenuController) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid category id")
	}
	category, err := amc.menuRepo.GetCategoryByID(id)
	if err != nil {
		return writeError(c, err)
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.apply(category)
	if err := category.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := amc.menuRepo.UpdateCategory(category); err != nil {
		return writeError(c, err)
	}
	invalidateMenuCache()
	return c.JSON(category)
}

func (amc *AdminMenuController) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid category id")
	}
	if err := amc.menuRepo.DeleteCategory(id); err != nil {
		return writeError(c, err)
	}
	invalidateMenuCache()
	return c.SendStatus(fiber.StatusNoContent)
}

// ---- dishes ----

type dishRequest struct {
	CategoryID  uint    `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImagePath   string  `json:"image_path"`
	IsAvailable *bool   `json:"is_available"`
	SortOrder   int     `json:"sort_order"`
}

func (req *dishRequest) apply(dish *models.Dish) {
	dish.CategoryID = req.CategoryID
	dish.Name = req.Name
	dish.Description = req.Description
	dish.Price = req.Price
	dish.ImagePath = req.ImagePath
	if req.IsAvailable != nil {
		dish.IsAvailable = *req.IsAvailable
	}
	dish.SortOrder = req.SortOrder
}

func (amc *AdminMenuController) HandleCreateDish(c *fiber.Ctx) error {
	var req dishRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	// the target category has to exist
	if _, err := amc.menuRepo.GetCategoryByID(req.CategoryID); err != nil {
		return writeError(c, err)
	}

	dish := &models.Dish{IsAvailable: true}
	req.apply(dish)
	if err := dish.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := amc.menuRepo.CreateDish(dish); err != nil {
		return writeError(c, err)
	}
	invalidateMenuCache()
	return c.Status(fiber.StatusCreated).JSON(dish)
}

func (amc *AdminMenuController) HandleGetDish(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid dish id")
	}
	dish, err := amc.menuRepo.GetDishByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dish)
}

func (amc *AdminMenuController) HandleUpdateDish(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid dish id")
	}
	dish, err := amc.menuRepo.GetDishByID(id)
	if err != nil {
		return writeError(c, err)
	}

	var req dishRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.apply(dish)
	if err := dish.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := amc.menuRepo.UpdateDish(dish); err != nil {
		return writeError(c, err)
	}
	invalidateMenuCache()
	return c.JSON(dish)
}

func (amc *AdminMenuController) HandleDeleteDish(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid dish id")
	}
	if err := amc.menuRepo.DeleteDish(id); err != nil {
		return writeError(c, err)
	}
	invalidateMenuCache()
	return c.SendStatus(fiber.StatusNoContent)
}

// ---- daily specials ----

type specialRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Weekday     int     `json:"weekday"`
	IsActive    *bool   `json:"is_active"`
}

func (req *specialRequest) apply(special *models.DailySpecial) {
	special.Name = req.Name
	special.Description = req.Description
	special.Price = req.Price
	special.Weekday = req.Weekday
	if req.IsActive != nil {
		special.IsActive = *req.IsActive
	}
}

func (amc *AdminMenuController) HandleListSpecials(c *fiber.Ctx) error {
	specials, err := amc.menuRepo.GetAllDailySpecials()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(specials)
}

func (amc *AdminMenuController) HandleCreateSpecial(c *fiber.Ctx) error {
	var req specialRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	special := &models.DailySpecial{IsActive: true}
	req.apply(special)
	if err := special.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := amc.menuRepo.CreateDailySpecial(special); err != nil {
		return writeError(c, err)
	}
	invalidateMenuCache()
	return c.Status(fiber.StatusCreated).JSON(special)
}

func (amc *AdminMenuController) HandleUpdateSpecial(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid special id")
	}
	special, err := amc.menuRepo.GetDailySpecialByID(id)
	if err != nil {
		return writeError(c, err)
	}

	var req specialRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.apply(special)
	if err := special.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := amc.menuRepo.UpdateDailySpecial(special); err != nil {
		return writeError(c, err)
	}
	invalidateMenuCache()
	return c.JSON(special)
}

func (amc *AdminMenuController) HandleDeleteSpecial(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid special id")
	}
	if err := amc.menuRepo.DeleteDailySpecial(id); err != nil {
		return writeError(c, err)
	}
	invalidateMenuCache()
	return c.SendStatus(fiber.StatusNoContent)
}
