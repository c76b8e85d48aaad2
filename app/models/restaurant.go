package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Restaurant is the single configuration record behind the public
// menu site: contact data plus the weekly opening schedule, persisted
// as JSON and only ever interpreted by the schedule codec.
type Restaurant struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	Phone        string         `gorm:"type:varchar(50);default:''" json:"phone"`
	WhatsApp     string         `gorm:"type:varchar(50);default:''" json:"whatsapp"`
	Address      string         `gorm:"type:varchar(500);default:''" json:"address"`
	ScheduleJSON datatypes.JSON `gorm:"type:json" json:"schedule"`
	Active       bool           `gorm:"default:true" json:"active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Restaurant model
func (Restaurant) TableName() string {
	return "restaurants"
}

func (r *Restaurant) Validate() error {
	v := validator.New()
	return v.Struct(r)
}

// GetActiveRestaurant returns the configuration record the public
// site renders. Multiple rows may exist historically; the first
// active one wins.
func GetActiveRestaurant(db *gorm.DB) (*Restaurant, error) {
	var restaurant Restaurant
	err := db.Where("active = ?", true).Order("id ASC").First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}
