package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Known media sections on the public sites.
const (
	MEDIA_SECTION_HERO    = "hero"
	MEDIA_SECTION_GALLERY = "gallery"
	MEDIA_SECTION_MENU    = "menu"
)

// MediaImage is a managed image asset referenced by the public pages.
// Files live on disk under the uploads directory; this record carries
// the metadata the admin edits.
type MediaImage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UUID      string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	FileName  string         `gorm:"type:varchar(255);not null" json:"file_name" validate:"required"`
	FilePath  string         `gorm:"type:varchar(500);not null" json:"file_path" validate:"required"`
	AltText   string         `gorm:"type:varchar(255);default:''" json:"alt_text"`
	Section   string         `gorm:"type:varchar(50);index;default:'gallery'" json:"section"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the MediaImage model
func (MediaImage) TableName() string {
	return "media_images"
}

func (m *MediaImage) Validate() error {
	v := validator.New()
	return v.Struct(m)
}

// BeforeCreate assigns the public identifier
func (m *MediaImage) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.New().String()
	}
	return nil
}

func FindMediaImageByUUID(db *gorm.DB, id string) (*MediaImage, error) {
	var image MediaImage
	err := db.Where("uuid = ?", id).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func GetActiveMediaBySection(db *gorm.DB, section string) ([]MediaImage, error) {
	var images []MediaImage
	err := db.Where("section = ? AND is_active = ?", section, true).
		Order("sort_order ASC, created_at DESC").Find(&images).Error
	return images, err
}
