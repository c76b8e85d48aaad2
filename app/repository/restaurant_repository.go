package repository

import (
	"github.com/altofibra/catalog/app/models"
	"gorm.io/gorm"
)

// restaurantRepository implements the RestaurantRepository interface
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository instance
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) GetActive() (*models.Restaurant, error) {
	return models.GetActiveRestaurant(r.db)
}

func (r *restaurantRepository) GetByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Save creates or updates the configuration record
func (r *restaurantRepository) Save(restaurant *models.Restaurant) error {
	return r.db.Save(restaurant).Error
}
