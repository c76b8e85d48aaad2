package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altofibra/catalog/app/models"
	"github.com/altofibra/catalog/app/repository"
)

// AdminServiceController handles admin service CRUD requests
type AdminServiceController struct {
	serviceRepo repository.ServiceRepository
}

// NewAdminServiceController creates a new admin service controller
func NewAdminServiceController(serviceRepo repository.ServiceRepository) *AdminServiceController {
	return &AdminServiceController{serviceRepo: serviceRepo}
}

type serviceRequest struct {
	Name         string   `json:"name"`
	SpeedMbps    *int     `json:"speed_mbps"`
	Price        float64  `json:"price"`
	RegularPrice float64  `json:"regular_price"`
	PromoMonths  int      `json:"promo_months"`
	Features     []string `json:"features"`
}

func (req *serviceRequest) apply(service *models.Service) error {
	service.Name = req.Name
	service.SpeedMbps = req.SpeedMbps
	service.Price = req.Price
	service.RegularPrice = req.RegularPrice
	service.PromoMonths = req.PromoMonths
	if service.PromoMonths == 0 {
		service.PromoMonths = 12
	}
	return service.SetFeatureList(req.Features)
}

func (asc *AdminServiceController) HandleList(c *fiber.Ctx) error {
	services, err := asc.serviceRepo.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	total, err := asc.serviceRepo.Count()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(listResponse(services, total))
}

func (asc *AdminServiceController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid service id")
	}
	service, err := asc.serviceRepo.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(service)
}

func (asc *AdminServiceController) HandleCreate(c *fiber.Ctx) error {
	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	service := &models.Service{}
	if err := req.apply(service); err != nil {
		return badRequest(c, err.Error())
	}
	if err := service.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := asc.serviceRepo.Create(service); err != nil {
		return writeError(c, err)
	}
	invalidateCatalogCache()
	return c.Status(fiber.StatusCreated).JSON(service)
}

func (asc *AdminServiceController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid service id")
	}
	service, err := asc.serviceRepo.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}

	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.apply(service); err != nil {
		return badRequest(c, err.Error())
	}
	if err := service.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := asc.serviceRepo.Update(service); err != nil {
		return writeError(c, err)
	}
	invalidateCatalogCache()
	return c.JSON(service)
}

func (asc *AdminServiceController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid service id")
	}
	if err := asc.serviceRepo.Delete(id); err != nil {
		return writeError(c, err)
	}
	invalidateCatalogCache()
	return c.SendStatus(fiber.StatusNoContent)
}
