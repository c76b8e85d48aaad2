package repository

import (
	"github.com/altofibra/catalog/app/models"
	"gorm.io/gorm"
)

// addonRepository implements the AddonRepository interface
type addonRepository struct {
	db *gorm.DB
}

// NewAddonRepository creates a new add-on repository instance
func NewAddonRepository(db *gorm.DB) AddonRepository {
	return &addonRepository{db: db}
}

func (r *addonRepository) Create(addon *models.AddOn) error {
	return r.db.Create(addon).Error
}

func (r *addonRepository) GetByID(id uint) (*models.AddOn, error) {
	var addon models.AddOn
	err := r.db.First(&addon, id).Error
	if err != nil {
		return nil, err
	}
	return &addon, nil
}

func (r *addonRepository) GetAll() ([]models.AddOn, error) {
	return models.GetAllAddons(r.db)
}

func (r *addonRepository) Update(addon *models.AddOn) error {
	return r.db.Save(addon).Error
}

func (r *addonRepository) Delete(id uint) error {
	inUse, err := r.InUse(id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrEntityInUse
	}
	return r.db.Delete(&models.AddOn{}, id).Error
}

func (r *addonRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.AddOn{}).Count(&count).Error
	return count, err
}

func (r *addonRepository) InUse(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PromotionAddon{}).Where("addon_id = ?", id).Count(&count).Error
	return count > 0, err
}
