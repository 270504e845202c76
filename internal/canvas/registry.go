package canvas

import (
	"github.com/mailcanvas/mailcanvas/internal/enum"
)

// ComponentType identifies one kind of renderable canvas component.
type ComponentType string

const (
	TypeHeading      ComponentType = "heading"
	TypeParagraph    ComponentType = "paragraph"
	TypeQuote        ComponentType = "quote"
	TypeContainer    ComponentType = "container"
	TypeRow          ComponentType = "row"
	TypeColumn       ComponentType = "column"
	TypeButton       ComponentType = "button"
	TypeCallToAction ComponentType = "cta"
	TypeImage        ComponentType = "image"
	TypeVideo        ComponentType = "video"
	TypeBulletList   ComponentType = "bullet-list"
	TypeNumberedList ComponentType = "numbered-list"
	TypeDivider      ComponentType = "divider"
	TypeSpacer       ComponentType = "spacer"
	TypeCard         ComponentType = "card"
	TypeSocialLinks  ComponentType = "social-links"
	TypeContactForm  ComponentType = "contact-form"
	TypeTable        ComponentType = "table"
	TypeProgressBar  ComponentType = "progress-bar"
	TypeAlert        ComponentType = "alert"
)

func (t ComponentType) String() string {
	return string(t)
}

// ComponentDefinition is one catalog entry: a component kind with the
// property bag every new instance starts from.
type ComponentDefinition struct {
	Type              ComponentType
	Category          enum.ComponentCategory
	DefaultProperties Properties
}

// Registry is the closed, immutable catalog of component kinds. Build it once
// with NewRegistry and inject it wherever components are created or compiled;
// there is no process-wide mutable catalog.
type Registry struct {
	defs  map[ComponentType]ComponentDefinition
	order []ComponentType
}

func NewRegistry() *Registry {
	r := &Registry{defs: make(map[ComponentType]ComponentDefinition)}

	r.register(ComponentDefinition{
		Type:     TypeHeading,
		Category: enum.CategoryText,
		DefaultProperties: Properties{
			"text":  "Your heading",
			"level": 2,
			"align": "left",
			"color": "#333333",
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeParagraph,
		Category: enum.CategoryText,
		DefaultProperties: Properties{
			"text":     "Write your paragraph here.",
			"align":    "left",
			"color":    "#333333",
			"fontSize": 16,
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeQuote,
		Category: enum.CategoryText,
		DefaultProperties: Properties{
			"text":        "An inspiring quote goes here.",
			"author":      "",
			"color":       "#555555",
			"borderColor": "#cccccc",
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeContainer,
		Category: enum.CategoryLayout,
		DefaultProperties: Properties{
			"backgroundColor": "#ffffff",
			"padding":         20,
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeRow,
		Category: enum.CategoryLayout,
		DefaultProperties: Properties{
			"backgroundColor": "",
			"padding":         0,
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeColumn,
		Category: enum.CategoryLayout,
		DefaultProperties: Properties{
			"width":   "50%",
			"padding": 10,
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeButton,
		Category: enum.CategoryInteractive,
		DefaultProperties: Properties{
			"text":            "Click me",
			"url":             "#",
			"variant":         enum.ButtonPrimary.String(),
			"align":           "center",
			"color":           "#ffffff",
			"backgroundColor": "#007bff",
			"borderRadius":    4,
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeCallToAction,
		Category: enum.CategoryInteractive,
		DefaultProperties: Properties{
			"title":           "Ready to get started?",
			"text":            "Join thousands of happy customers today.",
			"buttonText":      "Get started",
			"buttonUrl":       "#",
			"variant":         enum.ButtonPrimary.String(),
			"backgroundColor": "#f8f9fa",
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeImage,
		Category: enum.CategoryMedia,
		DefaultProperties: Properties{
			"src":    "",
			"alt":    "Image",
			"width":  560,
			"height": 0,
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeVideo,
		Category: enum.CategoryMedia,
		DefaultProperties: Properties{
			"src":   "",
			"label": "Download attachment",
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeBulletList,
		Category: enum.CategoryText,
		DefaultProperties: Properties{
			"items": []string{"First item", "Second item", "Third item"},
			"color": "#333333",
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeNumberedList,
		Category: enum.CategoryText,
		DefaultProperties: Properties{
			"items": []string{"First item", "Second item", "Third item"},
			"color": "#333333",
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeDivider,
		Category: enum.CategoryLayout,
		DefaultProperties: Properties{
			"color":     "#e0e0e0",
			"thickness": 1,
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeSpacer,
		Category: enum.CategoryLayout,
		DefaultProperties: Properties{
			"height": 24,
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeCard,
		Category: enum.CategoryContent,
		DefaultProperties: Properties{
			"title":           "Card title",
			"text":            "Card body text.",
			"backgroundColor": "#ffffff",
			"borderColor":     "#e0e0e0",
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeSocialLinks,
		Category: enum.CategoryContent,
		DefaultProperties: Properties{
			"links": []SocialLink{
				{Platform: "Twitter", URL: "https://twitter.com", Icon: "🐦"},
				{Platform: "Facebook", URL: "https://facebook.com", Icon: "📘"},
				{Platform: "LinkedIn", URL: "https://linkedin.com", Icon: "💼"},
			},
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeContactForm,
		Category: enum.CategoryInteractive,
		DefaultProperties: Properties{
			"title":      "Contact us",
			"buttonText": "Send",
			"fields":     []string{"Name", "Email", "Message"},
			// formId is seeded per instance at creation time so that
			// compilation stays deterministic
			"formId": "",
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeTable,
		Category: enum.CategoryContent,
		DefaultProperties: Properties{
			"headers": []string{"Column 1", "Column 2"},
			"rows":    [][]string{{"", ""}},
			"striped": true,
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeProgressBar,
		Category: enum.CategoryContent,
		DefaultProperties: Properties{
			"label":           "Progress",
			"percentage":      50,
			"color":           "#28a745",
			"backgroundColor": "#e9ecef",
		},
	})
	r.register(ComponentDefinition{
		Type:     TypeAlert,
		Category: enum.CategoryContent,
		DefaultProperties: Properties{
			"text":        "Something you should know.",
			"severity":    enum.AlertInfo.String(),
			"dismissible": false,
		},
	})

	return r
}

func (r *Registry) register(def ComponentDefinition) {
	r.defs[def.Type] = def
	r.order = append(r.order, def.Type)
}

// Lookup returns the definition for a component type. Callers must treat a
// missing definition as renderable (placeholder), never as a fatal error.
func (r *Registry) Lookup(t ComponentType) (ComponentDefinition, bool) {
	def, ok := r.defs[t]
	return def, ok
}

// Definitions returns the catalog in registration order.
func (r *Registry) Definitions() []ComponentDefinition {
	defs := make([]ComponentDefinition, 0, len(r.order))
	for _, t := range r.order {
		defs = append(defs, r.defs[t])
	}
	return defs
}

func (r *Registry) Size() int {
	return len(r.defs)
}

// containerTypes render their children recursively; all other kinds ignore
// the Children field.
var containerTypes = map[ComponentType]bool{
	TypeContainer: true,
	TypeRow:       true,
	TypeColumn:    true,
	TypeCard:      true,
}

// IsContainer reports whether instances of the type own child components.
func IsContainer(t ComponentType) bool {
	return containerTypes[t]
}
