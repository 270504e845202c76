package dto

import "github.com/mailcanvas/mailcanvas/internal/enum"

// SaveTemplateRequest creates a template when ID is empty and updates it
// otherwise. Content carries the JSON canvas document; HTML is accepted
// only for templates imported as raw markup and is ignored when Content
// is present.
type SaveTemplateRequest struct {
	ID          string                `json:"id,omitempty"`
	Name        string                `json:"name"`
	Subject     string                `json:"subject"`
	Category    enum.TemplateCategory `json:"category"`
	Description string                `json:"description"`
	Content     string                `json:"content,omitempty"`
	HTML        string                `json:"html,omitempty"`
}

// PreviewTemplateRequest compiles a canvas document into HTML without
// persisting anything. Backs the editor's live preview pane.
type PreviewTemplateRequest struct {
	Content string `json:"content"`
}

// RenderedTemplate is a template prepared for sending: compiled HTML and
// subject with placeholder values substituted.
type RenderedTemplate struct {
	TemplateID string `json:"templateId"`
	Subject    string `json:"subject"`
	HTML       string `json:"html"`
}
