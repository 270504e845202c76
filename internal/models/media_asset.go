package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/mailcanvas/mailcanvas/internal/utils"
)

// MediaAsset tracks one uploaded file (image, video, poster or attachment)
// referenced by canvas components through its public URL.
type MediaAsset struct {
	ID          string `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Filename    string `gorm:"column:filename;type:varchar(500)" json:"filename"`
	ContentType string `gorm:"column:content_type;type:varchar(255)" json:"contentType"`
	Size        int    `gorm:"column:size;default:0" json:"size"`

	// Storage location
	StorageBucket string `gorm:"column:storage_bucket;type:varchar(255)" json:"-"`
	StorageKey    string `gorm:"column:storage_key;type:varchar(1000)" json:"-"`
	PublicURL     string `gorm:"column:public_url;type:varchar(1000)" json:"url"`

	Metadata JSONMap `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"updatedAt"`
}

func (MediaAsset) TableName() string {
	return "media_assets"
}

func (m *MediaAsset) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = utils.GenerateNanoIDWithPrefix("media", 12)
	}
	m.CreatedAt = utils.Now()
	return nil
}
