package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AddOn is a flat-priced optional extra, e.g. a router rental or a
// static IP. Icon and Color drive the public card rendering.
type AddOn struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	Price     float64        `gorm:"not null" json:"price" validate:"gte=0"`
	Icon      string         `gorm:"type:varchar(100);default:''" json:"icon"`
	Color     string         `gorm:"type:varchar(50);default:''" json:"color"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the AddOn model
func (AddOn) TableName() string {
	return "addons"
}

func (a *AddOn) Validate() error {
	v := validator.New()
	return v.Struct(a)
}

func GetAllAddons(db *gorm.DB) ([]AddOn, error) {
	var addons []AddOn
	err := db.Order("price ASC").Find(&addons).Error
	return addons, err
}
