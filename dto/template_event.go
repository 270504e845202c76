package dto

// TemplateCreated is broadcast after a template record is persisted.
type TemplateCreated struct {
	TemplateID string   `json:"templateId"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Variables  []string `json:"variables"`
}

// TemplateRegenerated is broadcast after the self-heal job refreshes a
// template's compiled HTML from its stored document.
type TemplateRegenerated struct {
	TemplateID string `json:"templateId"`
}

// Event is the wire envelope for template lifecycle messages.
type Event struct {
	ID        string      `json:"id"`
	EventType string      `json:"eventType"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data"`
}
