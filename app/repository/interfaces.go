package repository

import (
	"github.com/altofibra/catalog/app/models"
)

// ServiceRepository defines the interface for service-related database operations
type ServiceRepository interface {
	Create(service *models.Service) error
	GetByID(id uint) (*models.Service, error)
	GetAll() ([]models.Service, error)
	Update(service *models.Service) error
	Delete(id uint) error
	Count() (int64, error)
	InUse(id uint) (bool, error)
}

// PlanRepository defines the interface for plan-related database operations
type PlanRepository interface {
	Create(plan *models.Plan) error
	GetByID(id uint) (*models.Plan, error)
	GetAll() ([]models.Plan, error)
	Update(plan *models.Plan) error
	Delete(id uint) error
	Count() (int64, error)
	InUse(id uint) (bool, error)
}

// AddonRepository defines the interface for add-on related database operations
type AddonRepository interface {
	Create(addon *models.AddOn) error
	GetByID(id uint) (*models.AddOn, error)
	GetAll() ([]models.AddOn, error)
	Update(addon *models.AddOn) error
	Delete(id uint) error
	Count() (int64, error)
	InUse(id uint) (bool, error)
}

// PromotionRepository defines the interface for promotion operations,
// including the denormalized aggregate reads the public site uses.
type PromotionRepository interface {
	Create(promotion *models.Promotion) error
	GetByID(id uint) (*models.Promotion, error)
	GetAll() ([]models.Promotion, error)
	Update(promotion *models.Promotion) error
	Delete(id uint) error
	Count() (int64, error)

	// GetAggregate returns the flattened view of one promotion, or
	// (nil, nil) when no such promotion exists.
	GetAggregate(id uint) (*models.PromotionAggregate, error)
	// GetActiveAggregates returns the flattened view of every active
	// promotion, newest first.
	GetActiveAggregates() ([]models.PromotionAggregate, error)
	// ReplaceRelations reconciles the promotion's membership sets
	// against the desired id lists in one transaction.
	ReplaceRelations(promotionID uint, serviceIDs, planIDs, addonIDs []uint) error
}

// MediaRepository defines the interface for media image operations
type MediaRepository interface {
	Create(image *models.MediaImage) error
	GetByID(id uint) (*models.MediaImage, error)
	GetByUUID(uuid string) (*models.MediaImage, error)
	GetAll() ([]models.MediaImage, error)
	GetActiveBySection(section string) ([]models.MediaImage, error)
	Update(image *models.MediaImage) error
	Delete(id uint) error
	Count() (int64, error)
}

// RestaurantRepository defines the interface for the restaurant
// configuration record
type RestaurantRepository interface {
	GetActive() (*models.Restaurant, error)
	GetByID(id uint) (*models.Restaurant, error)
	Save(restaurant *models.Restaurant) error
}

// MenuRepository defines the interface for menu categories, dishes
// and daily specials
type MenuRepository interface {
	CreateCategory(category *models.MenuCategory) error
	GetCategoryByID(id uint) (*models.MenuCategory, error)
	GetActiveCategories() ([]models.MenuCategory, error)
	GetAllCategories() ([]models.MenuCategory, error)
	UpdateCategory(category *models.MenuCategory) error
	DeleteCategory(id uint) error

	CreateDish(dish *models.Dish) error
	GetDishByID(id uint) (*models.Dish, error)
	GetDishesByCategory(categoryID uint) ([]models.Dish, error)
	UpdateDish(dish *models.Dish) error
	DeleteDish(id uint) error

	CreateDailySpecial(special *models.DailySpecial) error
	GetDailySpecialByID(id uint) (*models.DailySpecial, error)
	GetDailySpecialsByWeekday(weekday int) ([]models.DailySpecial, error)
	GetAllDailySpecials() ([]models.DailySpecial, error)
	UpdateDailySpecial(special *models.DailySpecial) error
	DeleteDailySpecial(id uint) error
}
