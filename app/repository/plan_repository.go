package repository

import (
	"github.com/altofibra/catalog/app/models"
	"gorm.io/gorm"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(plan *models.Plan) error {
	return r.db.Create(plan).Error
}

func (r *planRepository) GetByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) GetAll() ([]models.Plan, error) {
	return models.GetAllPlans(r.db)
}

func (r *planRepository) Update(plan *models.Plan) error {
	return r.db.Save(plan).Error
}

func (r *planRepository) Delete(id uint) error {
	inUse, err := r.InUse(id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrEntityInUse
	}
	return r.db.Delete(&models.Plan{}, id).Error
}

func (r *planRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Plan{}).Count(&count).Error
	return count, err
}

func (r *planRepository) InUse(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PromotionPlan{}).Where("plan_id = ?", id).Count(&count).Error
	return count > 0, err
}
