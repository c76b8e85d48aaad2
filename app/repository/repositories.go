package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrEntityInUse is returned when a catalog entity still referenced
// by a promotion would be deleted. Controllers map it to a conflict
// response instead of leaving dangling join rows behind.
var ErrEntityInUse = errors.New("entity is still referenced by a promotion")

// Repositories bundles every repository implementation
type Repositories struct {
	Service    ServiceRepository
	Plan       PlanRepository
	Addon      AddonRepository
	Promotion  PromotionRepository
	Media      MediaRepository
	Restaurant RestaurantRepository
	Menu       MenuRepository
}

// NewRepositories creates all repository instances backed by the
// given database handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Service:    NewServiceRepository(db),
		Plan:       NewPlanRepository(db),
		Addon:      NewAddonRepository(db),
		Promotion:  NewPromotionRepository(db),
		Media:      NewMediaRepository(db),
		Restaurant: NewRestaurantRepository(db),
		Menu:       NewMenuRepository(db),
	}
}
