package models

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plan type tags. The default empty tag renders as a regular TV
// bundle, PLAN_TYPE_ZAPPING gets the lighter streaming layout.
const PLAN_TYPE_ZAPPING = "ZAPPING"

// Plan is an optional subscription tier sold on top of a Service,
// typically a TV bundle with a channel count.
type Plan struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Name            string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	Price           float64        `gorm:"not null" json:"price" validate:"gte=0"`
	RegularPrice    float64        `gorm:"not null" json:"regular_price" validate:"gte=0"`
	PromoMonths     int            `gorm:"default:12" json:"promo_months" validate:"gte=1"`
	ChannelCount    *int           `json:"channel_count" validate:"omitempty,gte=0"`
	PlanType        string         `gorm:"type:varchar(50);default:''" json:"plan_type"`
	Characteristics datatypes.JSON `gorm:"type:json" json:"characteristics"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Plan model
func (Plan) TableName() string {
	return "plans"
}

func (p *Plan) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// CharacteristicMap decodes the Characteristics JSON column into a
// name -> enabled map. Malformed data yields an empty map.
func (p *Plan) CharacteristicMap() map[string]bool {
	out := map[string]bool{}
	if len(p.Characteristics) == 0 {
		return out
	}
	if err := json.Unmarshal(p.Characteristics, &out); err != nil {
		return map[string]bool{}
	}
	return out
}

// SetCharacteristicMap encodes the given map into the JSON column.
func (p *Plan) SetCharacteristicMap(m map[string]bool) error {
	if m == nil {
		m = map[string]bool{}
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	p.Characteristics = datatypes.JSON(raw)
	return nil
}

func GetAllPlans(db *gorm.DB) ([]Plan, error) {
	var plans []Plan
	err := db.Order("price ASC").Find(&plans).Error
	return plans, err
}
