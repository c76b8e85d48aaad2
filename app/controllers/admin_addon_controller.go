package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altofibra/catalog/app/models"
	"github.com/altofibra/catalog/app/repository"
)

// AdminAddonController handles admin add-on CRUD requests
type AdminAddonController struct {
	addonRepo repository.AddonRepository
}

// NewAdminAddonController creates a new admin add-on controller
func NewAdminAddonController(addonRepo repository.AddonRepository) *AdminAddonController {
	return &AdminAddonController{addonRepo: addonRepo}
}

type addonRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Icon  string  `json:"icon"`
	Color string  `json:"color"`
}

func (req *addonRequest) apply(addon *models.AddOn) {
	addon.Name = req.Name
	addon.Price = req.Price
	addon.Icon = req.Icon
	addon.Color = req.Color
}

func (aac *AdminAddonController) HandleList(c *fiber.Ctx) error {
	addons, err := aac.addonRepo.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	total, err := aac.addonRepo.Count()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(listResponse(addons, total))
}

func (aac *AdminAddonController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid addon id")
	}
	addon, err := aac.addonRepo.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(addon)
}

func (aac *AdminAddonController) HandleCreate(c *fiber.Ctx) error {
	var req addonRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	addon := &models.AddOn{}
	req.apply(addon)
	if err := addon.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := aac.addonRepo.Create(addon); err != nil {
		return writeError(c, err)
	}
	invalidateCatalogCache()
	return c.Status(fiber.StatusCreated).JSON(addon)
}

func (aac *AdminAddonController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid addon id")
	}
	addon, err := aac.addonRepo.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}

	var req addonRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.apply(addon)
	if err := addon.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := aac.addonRepo.Update(addon); err != nil {
		return writeError(c, err)
	}
	invalidateCatalogCache()
	return c.JSON(addon)
}

func (aac *AdminAddonController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid addon id")
	}
	if err := aac.addonRepo.Delete(id); err != nil {
		return writeError(c, err)
	}
	invalidateCatalogCache()
	return c.SendStatus(fiber.StatusNoContent)
}
