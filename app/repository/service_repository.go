package repository

import (
	"github.com/altofibra/catalog/app/models"
	"gorm.io/gorm"
)

// serviceRepository implements the ServiceRepository interface
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository instance
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *serviceRepository) GetByID(id uint) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) GetAll() ([]models.Service, error) {
	return models.GetAllServices(r.db)
}

func (r *serviceRepository) Update(service *models.Service) error {
	return r.db.Save(service).Error
}

// Delete refuses to remove a service that a promotion still points
// at; the admin has to detach it from the promotion first.
func (r *serviceRepository) Delete(id uint) error {
	inUse, err := r.InUse(id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrEntityInUse
	}
	return r.db.Delete(&models.Service{}, id).Error
}

func (r *serviceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Service{}).Count(&count).Error
	return count, err
}

func (r *serviceRepository) InUse(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PromotionService{}).Where("service_id = ?", id).Count(&count).Error
	return count > 0, err
}
