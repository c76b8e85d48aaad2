package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altofibra/catalog/app/models"
	"github.com/altofibra/catalog/app/repository"
)

// AdminPlanController handles admin plan CRUD requests
type AdminPlanController struct {
	planRepo repository.PlanRepository
}

// NewAdminPlanController creates a new admin plan controller
func NewAdminPlanController(planRepo repository.PlanRepository) *AdminPlanController {
	return &AdminPlanController{planRepo: planRepo}
}

type planRequest struct {
	Name            string          `json:"name"`
	Price           float64         `json:"price"`
	RegularPrice    float64         `json:"regular_price"`
	PromoMonths     int             `json:"promo_months"`
	ChannelCount    *int            `json:"channel_count"`
	PlanType        string          `json:"plan_type"`
	Characteristics map[string]bool `json:"characteristics"`
}

func (req *planRequest) apply(plan *models.Plan) error {
	plan.Name = req.Name
	plan.Price = req.Price
	plan.RegularPrice = req.RegularPrice
	plan.PromoMonths = req.PromoMonths
	if plan.PromoMonths == 0 {
		plan.PromoMonths = 12
	}
	plan.ChannelCount = req.ChannelCount
	plan.PlanType = req.PlanType
	return plan.SetCharacteristicMap(req.Characteristics)
}

func (apc *AdminPlanController) HandleList(c *fiber.Ctx) error {
	plans, err := apc.planRepo.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	total, err := apc.planRepo.Count()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(listResponse(plans, total))
}

func (apc *AdminPlanController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid plan id")
	}
	plan, err := apc.planRepo.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(plan)
}

func (apc *AdminPlanController) HandleCreate(c *fiber.Ctx) error {
	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	plan := &models.Plan{}
	if err := req.apply(plan); err != nil {
		return badRequest(c, err.Error())
	}
	if err := plan.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := apc.planRepo.Create(plan); err != nil {
		return writeError(c, err)
	}
	invalidateCatalogCache()
	return c.Status(fiber.StatusCreated).JSON(plan)
}

func (apc *AdminPlanController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid plan id")
	}
	plan, err := apc.planRepo.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}

	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := req.apply(plan); err != nil {
		return badRequest(c, err.Error())
	}
	if err := plan.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := apc.planRepo.Update(plan); err != nil {
		return writeError(c, err)
	}
	invalidateCatalogCache()
	return c.JSON(plan)
}

func (apc *AdminPlanController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid plan id")
	}
	if err := apc.planRepo.Delete(id); err != nil {
		return writeError(c, err)
	}
	invalidateCatalogCache()
	return c.SendStatus(fiber.StatusNoContent)
}
