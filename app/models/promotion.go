package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Promotion bundles a discount percentage over one or more Services
// with the Plans and AddOns eligible for the same campaign. The
// discount applies to the service price only; plan and add-on prices
// are never discounted.
type Promotion struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	Discount float64 `gorm:"not null" json:"discount" validate:"gte=0,lte=100"`
	Duration int     `gorm:"default:12" json:"duration" validate:"gte=1"`
	Active   bool    `gorm:"default:true" json:"active"`
	Color    string  `gorm:"type:varchar(50);default:''" json:"color"`

	// ViewCount is incremented in Redis and flushed in batches.
	ViewCount uint64 `gorm:"default:0" json:"view_count"`

	Services []PromotionService `gorm:"foreignKey:PromotionID;constraint:OnDelete:CASCADE" json:"services"`
	Plans    []PromotionPlan    `gorm:"foreignKey:PromotionID;constraint:OnDelete:CASCADE" json:"plans"`
	Addons   []PromotionAddon   `gorm:"foreignKey:PromotionID;constraint:OnDelete:CASCADE" json:"addons"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Promotion model
func (Promotion) TableName() string {
	return "promotions"
}

func (p *Promotion) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// PromotionService links a promotion to a service it discounts.
type PromotionService struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PromotionID uint    `gorm:"index:idx_promo_service,unique;not null" json:"promotion_id"`
	ServiceID   uint    `gorm:"index:idx_promo_service,unique;not null" json:"service_id"`
	Service     Service `gorm:"foreignKey:ServiceID" json:"service"`
}

func (PromotionService) TableName() string {
	return "promotion_services"
}

// PromotionPlan links a promotion to an eligible plan.
type PromotionPlan struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	PromotionID uint `gorm:"index:idx_promo_plan,unique;not null" json:"promotion_id"`
	PlanID      uint `gorm:"index:idx_promo_plan,unique;not null" json:"plan_id"`
	Plan        Plan `gorm:"foreignKey:PlanID" json:"plan"`
}

func (PromotionPlan) TableName() string {
	return "promotion_plans"
}

// PromotionAddon links a promotion to an eligible add-on.
type PromotionAddon struct {
	ID          uint  `gorm:"primaryKey" json:"id"`
	PromotionID uint  `gorm:"index:idx_promo_addon,unique;not null" json:"promotion_id"`
	AddonID     uint  `gorm:"index:idx_promo_addon,unique;not null" json:"addon_id"`
	Addon       AddOn `gorm:"foreignKey:AddonID" json:"addon"`
}

func (PromotionAddon) TableName() string {
	return "promotion_addons"
}

// PromotionAggregate is the denormalized view the public site works
// with: the promotion's own fields plus the full payload of every
// related entity, flattened out of the join rows.
type PromotionAggregate struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Discount float64   `json:"discount"`
	Duration int       `json:"duration"`
	Active   bool      `json:"active"`
	Color    string    `json:"color"`
	Services []Service `json:"services"`
	Plans    []Plan    `json:"plans"`
	Addons   []AddOn   `json:"addons"`
}

// Aggregate flattens a promotion with preloaded join rows into the
// denormalized view. Join rows whose target entity no longer exists
// (dangling references) are skipped rather than surfaced as zero
// values.
func (p *Promotion) Aggregate() *PromotionAggregate {
	agg := &PromotionAggregate{
		ID:       p.ID,
		Name:     p.Name,
		Discount: p.Discount,
		Duration: p.Duration,
		Active:   p.Active,
		Color:    p.Color,
		Services: []Service{},
		Plans:    []Plan{},
		Addons:   []AddOn{},
	}
	for _, ps := range p.Services {
		if ps.Service.ID != 0 {
			agg.Services = append(agg.Services, ps.Service)
		}
	}
	for _, pp := range p.Plans {
		if pp.Plan.ID != 0 {
			agg.Plans = append(agg.Plans, pp.Plan)
		}
	}
	for _, pa := range p.Addons {
		if pa.Addon.ID != 0 {
			agg.Addons = append(agg.Addons, pa.Addon)
		}
	}
	return agg
}
