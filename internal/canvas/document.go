package canvas

import (
	"github.com/google/uuid"

	"github.com/mailcanvas/mailcanvas/internal/utils"
)

// ComponentInstance is one node of the editable document tree. The ID is
// allocated once at creation and stays stable for the instance's lifetime;
// reorder, selection and delete all key on it.
type ComponentInstance struct {
	ID         string               `json:"id"`
	Type       ComponentType        `json:"type"`
	Properties Properties           `json:"properties"`
	Children   []*ComponentInstance `json:"children,omitempty"`
}

// Document is the ordered sequence of top-level component instances. Order is
// significant: the compiler renders top to bottom. An empty document is valid.
type Document []*ComponentInstance

// NewInstance allocates a component instance of the given type with the
// registry defaults copied in. Returns false when the type is not in the
// catalog; such instances are never created, though documents referencing
// retired types still compile (to a placeholder).
func NewInstance(registry *Registry, t ComponentType) (*ComponentInstance, bool) {
	def, ok := registry.Lookup(t)
	if !ok {
		return nil, false
	}

	props := def.DefaultProperties.Clone()
	if t == TypeContactForm {
		// seeded at creation so compilation stays deterministic
		props["formId"] = uuid.NewString()
	}

	return &ComponentInstance{
		ID:         utils.GenerateNanoIDWithPrefix("cmp", 12),
		Type:       t,
		Properties: props,
	}, true
}

// Canvas is one editing session: a document plus an optional single
// selection. It is exclusively owned by one editor; there is no concurrent
// merge semantics.
type Canvas struct {
	registry   *Registry
	doc        Document
	selectedID string
}

func NewCanvas(registry *Registry) *Canvas {
	return &Canvas{registry: registry}
}

// Load replaces the session's document, e.g. when reopening a stored
// template for editing. Selection is cleared.
func (c *Canvas) Load(doc Document) {
	c.doc = doc
	c.selectedID = ""
}

// Document returns the current component sequence.
func (c *Canvas) Document() Document {
	return c.doc
}

// Insert appends a new instance of the given type to the document and
// selects it. Always succeeds for known types.
func (c *Canvas) Insert(t ComponentType) (*ComponentInstance, bool) {
	instance, ok := NewInstance(c.registry, t)
	if !ok {
		return nil, false
	}
	c.doc = append(c.doc, instance)
	c.selectedID = instance.ID
	return instance, true
}

// UpdateProperties merges the patch into the matching instance's property
// bag. Individual keys are overwritten; unmentioned keys are untouched.
// Returns false when no instance has the id.
func (c *Canvas) UpdateProperties(id string, patch Properties) bool {
	instance := findInstance(c.doc, id)
	if instance == nil {
		return false
	}
	if instance.Properties == nil {
		instance.Properties = Properties{}
	}
	for key, value := range patch {
		instance.Properties[key] = value
	}
	return true
}

// Delete removes the matching top-level instance. When the deleted instance
// was selected the selection is cleared. Returns false when the id is not
// present.
func (c *Canvas) Delete(id string) bool {
	for i, instance := range c.doc {
		if instance.ID == id {
			c.doc = append(c.doc[:i], c.doc[i+1:]...)
			if c.selectedID == id {
				c.selectedID = ""
			}
			return true
		}
	}
	return false
}

// Reorder moves the dragged instance to the target instance's position. The
// id multiset is invariant: no instance is ever duplicated or dropped. A
// missing dragged or target id is a no-op, reported via the return value.
func (c *Canvas) Reorder(draggedID, targetID string) bool {
	if draggedID == targetID {
		return true
	}

	draggedIdx := -1
	for i, instance := range c.doc {
		if instance.ID == draggedID {
			draggedIdx = i
			break
		}
	}
	if draggedIdx < 0 {
		return false
	}

	dragged := c.doc[draggedIdx]
	rest := append(c.doc[:draggedIdx:draggedIdx], c.doc[draggedIdx+1:]...)

	targetIdx := -1
	for i, instance := range rest {
		if instance.ID == targetID {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return false
	}

	reordered := make(Document, 0, len(c.doc))
	reordered = append(reordered, rest[:targetIdx]...)
	reordered = append(reordered, dragged)
	reordered = append(reordered, rest[targetIdx:]...)
	c.doc = reordered
	return true
}

// Select marks the instance as the target of property-panel edits. Returns
// false (and leaves the selection unchanged) for unknown ids.
func (c *Canvas) Select(id string) bool {
	if findInstance(c.doc, id) == nil {
		return false
	}
	c.selectedID = id
	return true
}

// Selection returns the currently selected instance id, if any.
func (c *Canvas) Selection() (string, bool) {
	return c.selectedID, c.selectedID != ""
}

// AppendChild attaches a new instance of the given type to a container-like
// parent. Fails for unknown parent ids, unknown types and non-container
// parents.
func (c *Canvas) AppendChild(parentID string, t ComponentType) (*ComponentInstance, bool) {
	parent := findInstance(c.doc, parentID)
	if parent == nil || !IsContainer(parent.Type) {
		return nil, false
	}
	instance, ok := NewInstance(c.registry, t)
	if !ok {
		return nil, false
	}
	parent.Children = append(parent.Children, instance)
	return instance, true
}

// findInstance searches the document tree depth-first. Property edits may
// target nested children of container components.
func findInstance(doc Document, id string) *ComponentInstance {
	for _, instance := range doc {
		if instance.ID == id {
			return instance
		}
		if found := findInstance(instance.Children, id); found != nil {
			return found
		}
	}
	return nil
}
