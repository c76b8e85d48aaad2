package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MenuCategory groups dishes on the public menu page.
type MenuCategory struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	Icon      string         `gorm:"type:varchar(100);default:''" json:"icon"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	Dishes    []Dish         `gorm:"foreignKey:CategoryID" json:"dishes"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the MenuCategory model
func (MenuCategory) TableName() string {
	return "menu_categories"
}

func (mc *MenuCategory) Validate() error {
	v := validator.New()
	return v.Struct(mc)
}

// Dish is a single menu item inside a category.
type Dish struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CategoryID  uint           `gorm:"index;not null" json:"category_id" validate:"required"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price" validate:"gte=0"`
	ImagePath   string         `gorm:"type:varchar(500);default:''" json:"image_path"`
	IsAvailable bool           `gorm:"default:true" json:"is_available"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Dish model
func (Dish) TableName() string {
	return "dishes"
}

func (d *Dish) Validate() error {
	v := validator.New()
	return v.Struct(d)
}

// DailySpecial is a dish of the day. Weekday follows time.Weekday
// numbering, Sunday = 0.
type DailySpecial struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price" validate:"gte=0"`
	Weekday     int            `gorm:"index;not null" json:"weekday" validate:"gte=0,lte=6"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the DailySpecial model
func (DailySpecial) TableName() string {
	return "daily_specials"
}

func (ds *DailySpecial) Validate() error {
	v := validator.New()
	return v.Struct(ds)
}
