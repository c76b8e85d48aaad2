package repository

import (
	"github.com/altofibra/catalog/app/models"
	"gorm.io/gorm"
)

// menuRepository implements the MenuRepository interface
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository instance
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateCategory(category *models.MenuCategory) error {
	return r.db.Create(category).Error
}

func (r *menuRepository) GetCategoryByID(id uint) (*models.MenuCategory, error) {
	var category models.MenuCategory
	err := r.db.Preload("Dishes", func(db *gorm.DB) *gorm.DB {
		return db.Order("dishes.sort_order ASC")
	}).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetActiveCategories returns the categories the public menu shows,
// with only the dishes that are currently available.
func (r *menuRepository) GetActiveCategories() ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	err := r.db.Where("is_active = ?", true).
		Preload("Dishes", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("dishes.sort_order ASC")
		}).
		Order("sort_order ASC").Find(&categories).Error
	return categories, err
}

func (r *menuRepository) GetAllCategories() ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	err := r.db.Preload("Dishes", func(db *gorm.DB) *gorm.DB {
		return db.Order("dishes.sort_order ASC")
	}).Order("sort_order ASC").Find(&categories).Error
	return categories, err
}

func (r *menuRepository) UpdateCategory(category *models.MenuCategory) error {
	return r.db.Omit("Dishes").Save(category).Error
}

// DeleteCategory removes the category together with its dishes.
func (r *menuRepository) DeleteCategory(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Dish{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MenuCategory{}, id).Error
	})
}

func (r *menuRepository) CreateDish(dish *models.Dish) error {
	return r.db.Create(dish).Error
}

func (r *menuRepository) GetDishByID(id uint) (*models.Dish, error) {
	var dish models.Dish
	err := r.db.First(&dish, id).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *menuRepository) GetDishesByCategory(categoryID uint) ([]models.Dish, error) {
	var dishes []models.Dish
	err := r.db.Where("category_id = ?", categoryID).Order("sort_order ASC").Find(&dishes).Error
	return dishes, err
}

func (r *menuRepository) UpdateDish(dish *models.Dish) error {
	return r.db.Save(dish).Error
}

func (r *menuRepository) DeleteDish(id uint) error {
	return r.db.Delete(&models.Dish{}, id).Error
}

func (r *menuRepository) CreateDailySpecial(special *models.DailySpecial) error {
	return r.db.Create(special).Error
}

func (r *menuRepository) GetDailySpecialByID(id uint) (*models.DailySpecial, error) {
	var special models.DailySpecial
	err := r.db.First(&special, id).Error
	if err != nil {
		return nil, err
	}
	return &special, nil
}

func (r *menuRepository) GetDailySpecialsByWeekday(weekday int) ([]models.DailySpecial, error) {
	var specials []models.DailySpecial
	err := r.db.Where("weekday = ? AND is_active = ?", weekday, true).
		Order("created_at ASC").Find(&specials).Error
	return specials, err
}

func (r *menuRepository) GetAllDailySpecials() ([]models.DailySpecial, error) {
	var specials []models.DailySpecial
	err := r.db.Order("weekday ASC, created_at ASC").Find(&specials).Error
	return specials, err
}

func (r *menuRepository) UpdateDailySpecial(special *models.DailySpecial) error {
	return r.db.Save(special).Error
}

func (r *menuRepository) DeleteDailySpecial(id uint) error {
	return r.db.Delete(&models.DailySpecial{}, id).Error
}
