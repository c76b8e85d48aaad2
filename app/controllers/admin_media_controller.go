package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altofibra/catalog/app/models"
	"github.com/altofibra/catalog/app/repository"
)

// AdminMediaController handles admin media image CRUD requests. The
// image files themselves are served statically from the uploads
// directory; this controller manages the metadata records.
type AdminMediaController struct {
	mediaRepo repository.MediaRepository
}

// NewAdminMediaController creates a new admin media controller
func NewAdminMediaController(mediaRepo repository.MediaRepository) *AdminMediaController {
	return &AdminMediaController{mediaRepo: mediaRepo}
}

type mediaRequest struct {
	Title     string `json:"title"`
	FileName  string `json:"file_name"`
	FilePath  string `json:"file_path"`
	AltText   string `json:"alt_text"`
	Section   string `json:"section"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

func (req *mediaRequest) apply(image *models.MediaImage) {
	image.Title = req.Title
	image.FileName = req.FileName
	image.FilePath = req.FilePath
	image.AltText = req.AltText
	if req.Section != "" {
		image.Section = req.Section
	}
	image.SortOrder = req.SortOrder
	if req.IsActive != nil {
		image.IsActive = *req.IsActive
	}
}

func (amc *AdminMediaController) HandleList(c *fiber.Ctx) error {
	images, err := amc.mediaRepo.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	total, err := amc.mediaRepo.Count()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(listResponse(images, total))
}

func (amc *AdminMediaController) HandleGet(c *fiber.Ctx) error {
	image, err := amc.mediaRepo.GetByUUID(c.Params("uuid"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(image)
}

func (amc *AdminMediaController) HandleCreate(c *fiber.Ctx) error {
	var req mediaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	image := &models.MediaImage{Section: models.MEDIA_SECTION_GALLERY, IsActive: true}
	req.apply(image)
	if err := image.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := amc.mediaRepo.Create(image); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

func (amc *AdminMediaController) HandleUpdate(c *fiber.Ctx) error {
	image, err := amc.mediaRepo.GetByUUID(c.Params("uuid"))
	if err != nil {
		return writeError(c, err)
	}

	var req mediaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.apply(image)
	if err := image.Validate(); err != nil {
		return validationError(c, err)
	}
	if err := amc.mediaRepo.Update(image); err != nil {
		return writeError(c, err)
	}
	return c.JSON(image)
}

func (amc *AdminMediaController) HandleDelete(c *fiber.Ctx) error {
	image, err := amc.mediaRepo.GetByUUID(c.Params("uuid"))
	if err != nil {
		return writeError(c, err)
	}
	if err := amc.mediaRepo.Delete(image.ID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
