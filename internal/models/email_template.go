package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/mailcanvas/mailcanvas/internal/enum"
	"github.com/mailcanvas/mailcanvas/internal/utils"
)

// EmailTemplate is the persisted unit of the visual editor: the compiled
// HTML plus, for canvas-built templates, the JSON document it was compiled
// from. When Content is present the HTML column is a cache, not the source
// of truth; it is recompiled on read and by the nightly self-heal job.
type EmailTemplate struct {
	ID          string                `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Name        string                `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Subject     string                `gorm:"column:subject;type:varchar(1000)" json:"subject"`
	Category    enum.TemplateCategory `gorm:"column:category;type:varchar(50);index" json:"category"`
	Description string                `gorm:"column:description;type:text" json:"description"`

	// Variables holds the {{placeholder}} names discovered in the compiled
	// HTML and subject at save time.
	Variables pq.StringArray `gorm:"column:variables;type:text[]" json:"variables"`

	// HTML is the last-compiled output. Always present.
	HTML string `gorm:"column:html;type:text" json:"html"`

	// Content is the JSON-serialized canvas document. Empty for templates
	// imported as raw HTML.
	Content string `gorm:"column:content;type:text" json:"content,omitempty"`

	// PreviewText is a plain-text snippet of the compiled HTML shown in
	// template listings.
	PreviewText string `gorm:"column:preview_text;type:varchar(500)" json:"previewText"`

	CreatedAt time.Time      `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (EmailTemplate) TableName() string {
	return "email_templates"
}

func (t *EmailTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = utils.GenerateNanoIDWithPrefix("tmpl", 16)
	}
	if t.Category == "" {
		t.Category = enum.TemplateGeneral
	}
	t.CreatedAt = utils.Now()
	return nil
}

// HasDocument reports whether the template carries a canvas document payload.
func (t *EmailTemplate) HasDocument() bool {
	return t.Content != ""
}
