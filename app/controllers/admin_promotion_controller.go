package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altofibra/catalog/app/models"
	"github.com/altofibra/catalog/app/repository"
)

// AdminPromotionController handles admin promotion CRUD requests,
// including relation membership updates.
type AdminPromotionController struct {
	promotionRepo repository.PromotionRepository
}

// NewAdminPromotionController creates a new admin promotion controller
func NewAdminPromotionController(promotionRepo repository.PromotionRepository) *AdminPromotionController {
	return &AdminPromotionController{promotionRepo: promotionRepo}
}

type promotionRequest struct {
	Name       string  `json:"name"`
	Discount   float64 `json:"discount"`
	Duration   int     `json:"duration"`
	Active     *bool   `json:"active"`
	Color      string  `json:"color"`
	ServiceIDs []uint  `json:"service_ids"`
	PlanIDs    []uint  `json:"plan_ids"`
	AddonIDs   []uint  `json:"addon_ids"`
}

func (req *promotionRequest) apply(promotion *models.Promotion) {
	promotion.Name = req.Name
	promotion.Discount = req.Discount
	promotion.Duration = req.Duration
	if promotion.Duration == 0 {
		promotion.Duration = 12
	}
	if req.Active != nil {
		promotion.Active = *req.Active
	}
	promotion.Color = req.Color
}

func (apc *AdminPromotionController) HandleList(c *fiber.Ctx) error {
	promotions, err := apc.promotionRepo.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	total, err := apc.promotionRepo.Count()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(listResponse(promotions, total))
}

// HandleGet returns the flattened aggregate view, which is what the
// admin edit form works with.
func (apc *AdminPromotionController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid promotion id")
	}
	aggregate, err := apc.promotionRepo.GetAggregate(id)
	if err != nil {
		return writeError(c, err)
	}
	if aggregate == nil {
		return notFound(c, "promotion not found")
	}
	return c.JSON(aggregate)
}

func (apc *AdminPromotionController) HandleCreate(c *fiber.Ctx) error {
	var req promotionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	promotion := &models.Promotion{Active: true}
	req.apply(promotion)
	if err := promotion.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := apc.promotionRepo.Create(promotion); err != nil {
		return writeError(c, err)
	}
	if err := apc.promotionRepo.ReplaceRelations(promotion.ID, req.ServiceIDs, req.PlanIDs, req.AddonIDs); err != nil {
		return writeError(c, err)
	}

	invalidateCatalogCache()
	aggregate, err := apc.promotionRepo.GetAggregate(promotion.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(aggregate)
}

func (apc *AdminPromotionController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid promotion id")
	}
	promotion, err := apc.promotionRepo.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}

	var req promotionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.apply(promotion)
	if err := promotion.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := apc.promotionRepo.Update(promotion); err != nil {
		return writeError(c, err)
	}
	if err := apc.promotionRepo.ReplaceRelations(id, req.ServiceIDs, req.PlanIDs, req.AddonIDs); err != nil {
		return writeError(c, err)
	}

	invalidateCatalogCache()
	aggregate, err := apc.promotionRepo.GetAggregate(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(aggregate)
}

func (apc *AdminPromotionController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid promotion id")
	}
	if err := apc.promotionRepo.Delete(id); err != nil {
		return writeError(c, err)
	}
	invalidateCatalogCache()
	return c.SendStatus(fiber.StatusNoContent)
}
