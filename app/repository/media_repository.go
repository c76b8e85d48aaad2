package repository

import (
	"github.com/altofibra/catalog/app/models"
	"gorm.io/gorm"
)

// mediaRepository implements the MediaRepository interface
type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository instance
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(image *models.MediaImage) error {
	return r.db.Create(image).Error
}

func (r *mediaRepository) GetByID(id uint) (*models.MediaImage, error) {
	var image models.MediaImage
	err := r.db.First(&image, id).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *mediaRepository) GetByUUID(uuid string) (*models.MediaImage, error) {
	return models.FindMediaImageByUUID(r.db, uuid)
}

func (r *mediaRepository) GetAll() ([]models.MediaImage, error) {
	var images []models.MediaImage
	err := r.db.Order("section ASC, sort_order ASC, created_at DESC").Find(&images).Error
	return images, err
}

func (r *mediaRepository) GetActiveBySection(section string) ([]models.MediaImage, error) {
	return models.GetActiveMediaBySection(r.db, section)
}

func (r *mediaRepository) Update(image *models.MediaImage) error {
	return r.db.Save(image).Error
}

func (r *mediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.MediaImage{}, id).Error
}

func (r *mediaRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.MediaImage{}).Count(&count).Error
	return count, err
}
