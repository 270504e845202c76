package canvas

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	localerrors "github.com/mailcanvas/mailcanvas/internal/errors"
)

func buildBridgeTestDocument(t *testing.T) Document {
	t.Helper()
	c := NewCanvas(NewRegistry())

	heading, ok := c.Insert(TypeHeading)
	require.True(t, ok)
	require.True(t, c.UpdateProperties(heading.ID, Properties{"text": "Welcome {{firstName}}", "level": 1}))

	container, ok := c.Insert(TypeContainer)
	require.True(t, ok)
	child, ok := c.AppendChild(container.ID, TypeBulletList)
	require.True(t, ok)
	require.True(t, c.UpdateProperties(child.ID, Properties{"items": []string{"one", "two"}}))

	_, ok = c.Insert(TypeTable)
	require.True(t, ok)
	_, ok = c.Insert(TypeSocialLinks)
	require.True(t, ok)

	return c.Document()
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	doc := buildBridgeTestDocument(t)

	content, err := Serialize(doc)
	require.NoError(t, err)

	restored, err := Deserialize(content)
	require.NoError(t, err)

	require.Len(t, restored, len(doc))
	for i, instance := range doc {
		assert.Equal(t, instance.ID, restored[i].ID)
		assert.Equal(t, instance.Type, restored[i].Type)
		assert.Len(t, restored[i].Children, len(instance.Children))
	}

	// once normalized to JSON shapes, further round-trips are lossless
	again, err := Serialize(restored)
	require.NoError(t, err)
	restoredAgain, err := Deserialize(again)
	require.NoError(t, err)
	assert.Equal(t, restored, restoredAgain)
}

func TestRoundTripCompilesIdentically(t *testing.T) {
	compiler := newTestCompiler()
	doc := buildBridgeTestDocument(t)

	content, err := Serialize(doc)
	require.NoError(t, err)
	restored, err := Deserialize(content)
	require.NoError(t, err)

	assert.Equal(t, compiler.Compile(doc), compiler.Compile(restored))
}

func TestSerializeEmptyDocument(t *testing.T) {
	content, err := Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", content)

	doc, err := Deserialize(content)
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestDeserializeRejectsNonArrayPayloads(t *testing.T) {
	for _, payload := range []string{
		"not json at all",
		`{"id":"c1","type":"heading"}`,
		`"just a string"`,
		"42",
	} {
		doc, err := Deserialize(payload)
		require.Error(t, err, "payload %q", payload)
		assert.True(t, errors.Is(err, localerrors.ErrInvalidDocumentPayload))
		assert.Nil(t, doc, "no partially-built document on failure")
	}
}

func TestDeserializeNullYieldsEmptyDocument(t *testing.T) {
	doc, err := Deserialize("null")
	require.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Empty(t, doc)
}

func TestRegeneratePrefersContent(t *testing.T) {
	compiler := newTestCompiler()
	doc := buildBridgeTestDocument(t)
	content, err := Serialize(doc)
	require.NoError(t, err)

	html := compiler.Regenerate(content, "<p>stale</p>")

	assert.Equal(t, compiler.Compile(doc), html)
	assert.NotContains(t, html, "stale")
}

func TestRegenerateFallsBackOnInvalidContent(t *testing.T) {
	compiler := newTestCompiler()

	assert.Equal(t, "<p>old</p>", compiler.Regenerate("{invalid json", "<p>old</p>"))
}

func TestRegenerateReturnsStoredHTMLWhenContentAbsent(t *testing.T) {
	compiler := newTestCompiler()

	assert.Equal(t, "<p>kept</p>", compiler.Regenerate("", "<p>kept</p>"))
}

func TestRegenerateIsIdempotent(t *testing.T) {
	compiler := newTestCompiler()
	content, err := Serialize(buildBridgeTestDocument(t))
	require.NoError(t, err)

	first := compiler.Regenerate(content, "")
	second := compiler.Regenerate(content, first)
	assert.Equal(t, first, second)
}
