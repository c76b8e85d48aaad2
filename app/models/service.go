package models

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is the base fibra connectivity offering. Price is the
// promotional monthly rate, RegularPrice is what the customer pays
// after PromoMonths.
type Service struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	SpeedMbps    *int           `json:"speed_mbps" validate:"omitempty,gte=0"`
	Price        float64        `gorm:"not null" json:"price" validate:"gte=0"`
	RegularPrice float64        `gorm:"not null" json:"regular_price" validate:"gte=0"`
	PromoMonths  int            `gorm:"default:12" json:"promo_months" validate:"gte=1"`
	Features     datatypes.JSON `gorm:"type:json" json:"features"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}

func (s *Service) Validate() error {
	v := validator.New()
	return v.Struct(s)
}

// FeatureList decodes the Features JSON column into a string slice.
// A missing or malformed column yields an empty list.
func (s *Service) FeatureList() []string {
	if len(s.Features) == 0 {
		return nil
	}
	var features []string
	if err := json.Unmarshal(s.Features, &features); err != nil {
		return nil
	}
	return features
}

// SetFeatureList encodes the given feature names into the JSON column.
func (s *Service) SetFeatureList(features []string) error {
	if features == nil {
		features = []string{}
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return err
	}
	s.Features = datatypes.JSON(raw)
	return nil
}

// Speed returns the advertised speed, defaulting to 0 when unset so
// marketing copy always has a number to show.
func (s *Service) Speed() int {
	if s.SpeedMbps == nil {
		return 0
	}
	return *s.SpeedMbps
}

func GetAllServices(db *gorm.DB) ([]Service, error) {
	var services []Service
	err := db.Order("created_at DESC").Find(&services).Error
	return services, err
}
