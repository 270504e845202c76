package canvas

import (
	"encoding/json"

	"github.com/pkg/errors"

	localerrors "github.com/mailcanvas/mailcanvas/internal/errors"
)

// Serialize encodes the component sequence to its stored JSON form. The
// encoding is lossless: Deserialize(Serialize(doc)) is structurally equal to
// doc (ids, types, properties, children and order preserved).
func Serialize(doc Document) (string, error) {
	if doc == nil {
		doc = Document{}
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize canvas document")
	}
	return string(payload), nil
}

// Deserialize parses a stored JSON payload back into a component sequence.
// A payload that is not a JSON array fails with ErrInvalidDocumentPayload;
// callers fall back to an empty document, never to a partially-built one.
func Deserialize(content string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, errors.Wrap(localerrors.ErrInvalidDocumentPayload, err.Error())
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Regenerate recompiles stored HTML from the document payload when one is
// present. Stored HTML is a cache that can go stale relative to the current
// compiler; the payload is the source of truth. On a missing or unparseable
// payload the stored HTML is returned unchanged, so the call is always safe
// and idempotent.
func (c *Compiler) Regenerate(content, storedHTML string) string {
	if content == "" {
		return storedHTML
	}

	doc, err := Deserialize(content)
	if err != nil {
		if c.log != nil {
			c.log.Warnf("failed to parse stored canvas document, falling back to stored HTML: %v", err)
		}
		return storedHTML
	}

	return c.Compile(doc)
}
