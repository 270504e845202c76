package canvas

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompiler() *Compiler {
	return NewCompiler(NewRegistry(), CompilerConfig{FormEndpoint: "https://forms.example.com/submit"}, nil)
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestCompileEmptyDocumentYieldsEmptyString(t *testing.T) {
	compiler := newTestCompiler()

	assert.Equal(t, "", compiler.Compile(nil))
	assert.Equal(t, "", compiler.Compile(Document{}))
}

func TestCompileIsDeterministic(t *testing.T) {
	compiler := newTestCompiler()
	registry := NewRegistry()

	doc := Document{}
	for _, def := range registry.Definitions() {
		instance, ok := NewInstance(registry, def.Type)
		require.True(t, ok)
		doc = append(doc, instance)
	}

	first := compiler.Compile(doc)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, compiler.Compile(doc), "compile output drifted on run %d", i)
	}
}

func TestCompileAppliesEnvelope(t *testing.T) {
	compiler := newTestCompiler()
	instance, _ := NewInstance(NewRegistry(), TypeParagraph)

	html := compiler.Compile(Document{instance})

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<meta charset="UTF-8">`)
	assert.Contains(t, html, `<meta name="viewport"`)
	assert.Contains(t, html, "body { margin: 0; padding: 0; }")
	assert.Contains(t, html, `width="600"`)
	assert.Contains(t, html, "max-width: 600px")
}

func TestCompileHeading(t *testing.T) {
	doc := Document{{
		ID:   "c1",
		Type: TypeHeading,
		Properties: Properties{
			"text":  "Hello",
			"level": 2,
			"align": "center",
			"color": "#111",
		},
	}}

	html := newTestCompiler().Compile(doc)

	assert.Contains(t, html, "<h2 style=\"text-align: center; color: #111; margin: 0 0 16px 0;\">Hello</h2>")
}

func TestCompileVideoBecomesDownloadCard(t *testing.T) {
	doc := Document{{
		ID:         "c1",
		Type:       TypeVideo,
		Properties: Properties{"src": "https://host/files/demo.mp4"},
	}}

	html := newTestCompiler().Compile(doc)

	assert.NotContains(t, html, "<video")
	assert.Contains(t, html, "demo.mp4")
	assert.Contains(t, html, ">mp4</div>")

	parsed := parseHTML(t, html)
	anchor := parsed.Find("a[download]")
	require.Equal(t, 1, anchor.Length())
	href, _ := anchor.Attr("href")
	assert.Equal(t, "https://host/files/demo.mp4", href)
}

func TestFileCardExtensionFallback(t *testing.T) {
	compiler := newTestCompiler()

	html := compiler.Compile(Document{{
		ID:         "c1",
		Type:       TypeVideo,
		Properties: Properties{"src": "https://host/files/noextension"},
	}})
	assert.Contains(t, html, ">file</div>")

	// extension indicator truncates to three characters
	html = compiler.Compile(Document{{
		ID:         "c2",
		Type:       TypeVideo,
		Properties: Properties{"src": "https://host/files/demo.webm"},
	}})
	assert.Contains(t, html, ">web</div>")
}

func TestCompileMalformedItemsDegradesToEmptyList(t *testing.T) {
	doc := Document{{
		ID:         "c1",
		Type:       TypeBulletList,
		Properties: Properties{"items": "not an array"},
	}}

	html := newTestCompiler().Compile(doc)

	parsed := parseHTML(t, html)
	list := parsed.Find("ul")
	require.Equal(t, 1, list.Length())
	assert.Equal(t, 0, list.Find("li").Length())
}

func TestCompileMalformedRowsAndLinksDegrade(t *testing.T) {
	doc := Document{
		{ID: "c1", Type: TypeTable, Properties: Properties{"headers": 42, "rows": "garbage"}},
		{ID: "c2", Type: TypeSocialLinks, Properties: Properties{"links": map[string]interface{}{"not": "a list"}}},
	}

	html := newTestCompiler().Compile(doc)

	parsed := parseHTML(t, html)
	assert.Equal(t, 0, parsed.Find("th").Length())
	assert.Equal(t, 0, parsed.Find("a").Length())
	assert.NotEmpty(t, html)
}

func TestCompileUnknownTypeRendersPlaceholder(t *testing.T) {
	doc := Document{
		{ID: "c1", Type: "nonexistent-widget", Properties: Properties{}},
		{ID: "c2", Type: TypeParagraph, Properties: Properties{"text": "still here"}},
	}

	html := newTestCompiler().Compile(doc)

	assert.Contains(t, html, "Unknown component: nonexistent-widget")
	assert.Contains(t, html, "still here", "the rest of the document still compiles")
}

func TestCompileContactFormCarriesHiddenFormID(t *testing.T) {
	registry := NewRegistry()
	instance, ok := NewInstance(registry, TypeContactForm)
	require.True(t, ok)

	html := newTestCompiler().Compile(Document{instance})

	parsed := parseHTML(t, html)
	form := parsed.Find("form")
	require.Equal(t, 1, form.Length())
	action, _ := form.Attr("action")
	assert.Equal(t, "https://forms.example.com/submit", action)
	method, _ := form.Attr("method")
	assert.Equal(t, "POST", method)

	hidden := form.Find(`input[type="hidden"][name="formId"]`)
	require.Equal(t, 1, hidden.Length())
	value, _ := hidden.Attr("value")
	assert.Equal(t, instance.Properties.String("formId", ""), value)

	assert.Equal(t, 3, form.Find(`input[type="text"]`).Length())
}

func TestCompileProgressBarPassesPercentageThrough(t *testing.T) {
	compiler := newTestCompiler()

	// out-of-range values are inserted verbatim, no clamping
	html := compiler.Compile(Document{{
		ID:         "c1",
		Type:       TypeProgressBar,
		Properties: Properties{"label": "Loading", "percentage": 150},
	}})
	assert.Contains(t, html, "width: 150%")
	assert.Contains(t, html, "Loading (150%)")

	html = compiler.Compile(Document{{
		ID:         "c2",
		Type:       TypeProgressBar,
		Properties: Properties{"percentage": -5},
	}})
	assert.Contains(t, html, "width: -5%")
}

func TestCompileButtonVariants(t *testing.T) {
	compiler := newTestCompiler()

	build := func(variant string) string {
		return compiler.Compile(Document{{
			ID:   "c1",
			Type: TypeButton,
			Properties: Properties{
				"text":            "Go",
				"url":             "https://example.com",
				"variant":         variant,
				"backgroundColor": "#007bff",
				"color":           "#ffffff",
			},
		}})
	}

	assert.Contains(t, build("primary"), "background-color: #007bff; color: #ffffff;")
	assert.Contains(t, build("secondary"), "background-color: #6c757d; color: #ffffff;")
	outline := build("outline")
	assert.Contains(t, outline, "background-color: transparent;")
	assert.Contains(t, outline, "border: 2px solid #007bff;")
}

func TestCompileImageUsesPlaceholderWhenUnset(t *testing.T) {
	registry := NewRegistry()
	instance, _ := NewInstance(registry, TypeImage)

	html := newTestCompiler().Compile(Document{instance})

	parsed := parseHTML(t, html)
	img := parsed.Find("img")
	require.Equal(t, 1, img.Length())
	src, _ := img.Attr("src")
	assert.Equal(t, imagePlaceholderSrc, src)
	width, _ := img.Attr("width")
	assert.Equal(t, "560", width)
}

func TestCompileTableStriping(t *testing.T) {
	doc := Document{{
		ID:   "c1",
		Type: TypeTable,
		Properties: Properties{
			"headers": []string{"Name", "Value"},
			"rows":    [][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}},
			"striped": true,
		},
	}}

	html := newTestCompiler().Compile(doc)

	parsed := parseHTML(t, html)
	assert.Equal(t, 2, parsed.Find("th").Length())
	assert.Equal(t, 6, parsed.Find("td").Length())
	// every second body row carries the stripe background
	assert.Equal(t, 1, strings.Count(html, "<tr style=\"background-color: #f8f9fa;\">"))
}

func TestCompileAlertSeverities(t *testing.T) {
	compiler := newTestCompiler()

	build := func(severity string) string {
		return compiler.Compile(Document{{
			ID:         "c1",
			Type:       TypeAlert,
			Properties: Properties{"text": "note", "severity": severity, "dismissible": true},
		}})
	}

	assert.Contains(t, build("success"), "background-color: #d4edda;")
	assert.Contains(t, build("danger"), "background-color: #f8d7da;")
	// unknown severities fall back to the info palette
	assert.Contains(t, build("mystery"), "background-color: #d1ecf1;")
	assert.Contains(t, build("info"), "&times;")
}

func TestCompileNestedContainers(t *testing.T) {
	c := NewCanvas(NewRegistry())
	row, ok := c.Insert(TypeRow)
	require.True(t, ok)
	column, ok := c.AppendChild(row.ID, TypeColumn)
	require.True(t, ok)
	leaf, ok := c.AppendChild(column.ID, TypeParagraph)
	require.True(t, ok)
	require.True(t, c.UpdateProperties(leaf.ID, Properties{"text": "deeply nested"}))

	html := newTestCompiler().Compile(c.Document())

	parsed := parseHTML(t, html)
	assert.Contains(t, parsed.Find("td[valign=top] p").Text(), "deeply nested")
}

func TestCompileEscapesUserText(t *testing.T) {
	doc := Document{{
		ID:         "c1",
		Type:       TypeParagraph,
		Properties: Properties{"text": `<script>alert("x")</script>`},
	}}

	html := newTestCompiler().Compile(doc)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestCompilePreservesPlaceholderTokens(t *testing.T) {
	doc := Document{{
		ID:         "c1",
		Type:       TypeParagraph,
		Properties: Properties{"text": "Hi {{firstName}}, welcome!"},
	}}

	html := newTestCompiler().Compile(doc)

	// substitution happens outside the compiler
	assert.Contains(t, html, "{{firstName}}")
}
