package repository

import (
	"errors"

	"github.com/altofibra/catalog/app/models"
	"gorm.io/gorm"
)

// promotionRepository implements the PromotionRepository interface
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a new promotion repository instance
func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(promotion *models.Promotion) error {
	return r.db.Create(promotion).Error
}

func (r *promotionRepository) GetByID(id uint) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.preloadRelations(r.db).First(&promotion, id).Error
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) GetAll() ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.preloadRelations(r.db).Order("created_at DESC").Find(&promotions).Error
	return promotions, err
}

func (r *promotionRepository) Update(promotion *models.Promotion) error {
	return r.db.Omit("Services", "Plans", "Addons").Save(promotion).Error
}

// Delete removes the promotion and, via the cascade on the join
// tables, its membership rows. The referenced services, plans and
// add-ons are never touched.
func (r *promotionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("promotion_id = ?", id).Delete(&models.PromotionService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("promotion_id = ?", id).Delete(&models.PromotionPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("promotion_id = ?", id).Delete(&models.PromotionAddon{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Promotion{}, id).Error
	})
}

func (r *promotionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Promotion{}).Count(&count).Error
	return count, err
}

func (r *promotionRepository) preloadRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Services.Service").
		Preload("Plans.Plan").
		Preload("Addons.Addon")
}

// GetAggregate flattens one promotion with its full related entity
// payloads. A missing promotion is not an error: callers branch on
// the nil aggregate.
func (r *promotionRepository) GetAggregate(id uint) (*models.PromotionAggregate, error) {
	promotion, err := r.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return promotion.Aggregate(), nil
}

func (r *promotionRepository) GetActiveAggregates() ([]models.PromotionAggregate, error) {
	var promotions []models.Promotion
	err := r.preloadRelations(r.db).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&promotions).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]models.PromotionAggregate, 0, len(promotions))
	for i := range promotions {
		aggregates = append(aggregates, *promotions[i].Aggregate())
	}
	return aggregates, nil
}

// ReplaceRelations reconciles the stored membership sets against the
// desired id lists. Only the difference is written: rows for ids that
// stay keep their identity, removed ids are deleted, new ids are
// inserted. Observably equivalent to rewriting the whole set, without
// the churn.
func (r *promotionRepository) ReplaceRelations(promotionID uint, serviceIDs, planIDs, addonIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := reconcileServiceRelations(tx, promotionID, serviceIDs); err != nil {
			return err
		}
		if err := reconcilePlanRelations(tx, promotionID, planIDs); err != nil {
			return err
		}
		return reconcileAddonRelations(tx, promotionID, addonIDs)
	})
}

func reconcileServiceRelations(tx *gorm.DB, promotionID uint, desired []uint) error {
	var current []uint
	if err := tx.Model(&models.PromotionService{}).
		Where("promotion_id = ?", promotionID).
		Pluck("service_id", &current).Error; err != nil {
		return err
	}

	toAdd, toRemove := diffIDs(current, desired)
	if len(toRemove) > 0 {
		if err := tx.Where("promotion_id = ? AND service_id IN ?", promotionID, toRemove).
			Delete(&models.PromotionService{}).Error; err != nil {
			return err
		}
	}
	for _, id := range toAdd {
		if err := tx.Create(&models.PromotionService{PromotionID: promotionID, ServiceID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}

func reconcilePlanRelations(tx *gorm.DB, promotionID uint, desired []uint) error {
	var current []uint
	if err := tx.Model(&models.PromotionPlan{}).
		Where("promotion_id = ?", promotionID).
		Pluck("plan_id", &current).Error; err != nil {
		return err
	}

	toAdd, toRemove := diffIDs(current, desired)
	if len(toRemove) > 0 {
		if err := tx.Where("promotion_id = ? AND plan_id IN ?", promotionID, toRemove).
			Delete(&models.PromotionPlan{}).Error; err != nil {
			return err
		}
	}
	for _, id := range toAdd {
		if err := tx.Create(&models.PromotionPlan{PromotionID: promotionID, PlanID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}

func reconcileAddonRelations(tx *gorm.DB, promotionID uint, desired []uint) error {
	var current []uint
	if err := tx.Model(&models.PromotionAddon{}).
		Where("promotion_id = ?", promotionID).
		Pluck("addon_id", &current).Error; err != nil {
		return err
	}

	toAdd, toRemove := diffIDs(current, desired)
	if len(toRemove) > 0 {
		if err := tx.Where("promotion_id = ? AND addon_id IN ?", promotionID, toRemove).
			Delete(&models.PromotionAddon{}).Error; err != nil {
			return err
		}
	}
	for _, id := range toAdd {
		if err := tx.Create(&models.PromotionAddon{PromotionID: promotionID, AddonID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}

// diffIDs computes the set difference between the stored membership
// and the desired one. Duplicates in the desired list collapse; only
// membership matters.
func diffIDs(current, desired []uint) (toAdd, toRemove []uint) {
	currentSet := make(map[uint]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}

	desiredSet := make(map[uint]struct{}, len(desired))
	for _, id := range desired {
		if _, dup := desiredSet[id]; dup {
			continue
		}
		desiredSet[id] = struct{}{}
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}

	for _, id := range current {
		if _, ok := desiredSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}
