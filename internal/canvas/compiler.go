package canvas

import (
	"fmt"
	"strings"

	"github.com/mailcanvas/mailcanvas/internal/logger"
)

const defaultContentWidth = 600

// CompilerConfig carries the few environment-dependent inputs of the
// compiler. Everything else is fixed so that output stays deterministic.
type CompilerConfig struct {
	// FormEndpoint is the external form-submission URL compiled into
	// contact-form markup.
	FormEndpoint string
	// ContentWidth is the centered column width in pixels. Defaults to 600,
	// the widest layout older email clients render reliably.
	ContentWidth int
}

// Compiler transforms a Document into a single self-contained HTML string
// suitable for email clients: inline styles only, table-based layout, no
// external CSS. Compile is pure and cheap enough to run on every edit.
type Compiler struct {
	registry     *Registry
	formEndpoint string
	contentWidth int
	log          logger.Logger
}

func NewCompiler(registry *Registry, cfg CompilerConfig, log logger.Logger) *Compiler {
	width := cfg.ContentWidth
	if width <= 0 {
		width = defaultContentWidth
	}
	return &Compiler{
		registry:     registry,
		formEndpoint: cfg.FormEndpoint,
		contentWidth: width,
		log:          log,
	}
}

// Compile renders the document to a full HTML page. An empty document yields
// an empty string; callers decide whether empty content still gets an
// envelope. Compile never fails: unknown component types render as visible
// placeholders and malformed properties degrade to empty collections.
func (c *Compiler) Compile(doc Document) string {
	if len(doc) == 0 {
		return ""
	}

	var body strings.Builder
	for _, instance := range doc {
		c.renderInstance(&body, instance)
	}

	return c.wrapEnvelope(body.String())
}

// CompileFragment renders the document body without the outer envelope.
// Used when canvas output is spliced into markup that carries its own
// scaffolding, and by tests that assert on fragments.
func (c *Compiler) CompileFragment(doc Document) string {
	var body strings.Builder
	for _, instance := range doc {
		c.renderInstance(&body, instance)
	}
	return body.String()
}

func (c *Compiler) renderInstance(sb *strings.Builder, instance *ComponentInstance) {
	props := instance.Properties

	switch instance.Type {
	case TypeHeading:
		c.renderHeading(sb, props)
	case TypeParagraph:
		c.renderParagraph(sb, props)
	case TypeQuote:
		c.renderQuote(sb, props)
	case TypeContainer:
		c.renderContainer(sb, instance)
	case TypeRow:
		c.renderRow(sb, instance)
	case TypeColumn:
		c.renderColumn(sb, instance)
	case TypeButton:
		c.renderButton(sb, props)
	case TypeCallToAction:
		c.renderCallToAction(sb, props)
	case TypeImage:
		c.renderImage(sb, props)
	case TypeVideo:
		c.renderFileCard(sb, props)
	case TypeBulletList:
		c.renderList(sb, props, "ul")
	case TypeNumberedList:
		c.renderList(sb, props, "ol")
	case TypeDivider:
		c.renderDivider(sb, props)
	case TypeSpacer:
		c.renderSpacer(sb, props)
	case TypeCard:
		c.renderCard(sb, instance)
	case TypeSocialLinks:
		c.renderSocialLinks(sb, props)
	case TypeContactForm:
		c.renderContactForm(sb, props)
	case TypeTable:
		c.renderTable(sb, props)
	case TypeProgressBar:
		c.renderProgressBar(sb, props)
	case TypeAlert:
		c.renderAlert(sb, props)
	default:
		if c.log != nil {
			c.log.Warnf("rendering placeholder for unknown component type %q", instance.Type)
		}
		c.renderUnknown(sb, instance.Type)
	}
}

func (c *Compiler) renderChildren(instance *ComponentInstance) string {
	var sb strings.Builder
	for _, child := range instance.Children {
		c.renderInstance(&sb, child)
	}
	return sb.String()
}

// wrapEnvelope applies the fixed email-safe scaffolding around compiled body
// content: full document with charset and viewport meta tags, reset styles
// and a centered single-column table. Applied identically regardless of
// document contents.
func (c *Compiler) wrapEnvelope(body string) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html>\n<head>\n")
	sb.WriteString("<meta charset=\"UTF-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("<style>\n")
	sb.WriteString("body { margin: 0; padding: 0; }\n")
	sb.WriteString("img { border: 0; display: block; }\n")
	sb.WriteString("table { border-collapse: collapse; }\n")
	sb.WriteString("</style>\n")
	sb.WriteString("</head>\n")
	sb.WriteString("<body style=\"margin: 0; padding: 0; background-color: #f4f4f4;\">\n")
	sb.WriteString("<table role=\"presentation\" width=\"100%\" cellpadding=\"0\" cellspacing=\"0\" border=\"0\">\n")
	sb.WriteString("<tr><td align=\"center\" style=\"padding: 20px 0;\">\n")
	fmt.Fprintf(&sb,
		"<table role=\"presentation\" width=\"%d\" cellpadding=\"0\" cellspacing=\"0\" border=\"0\" style=\"max-width: %dpx; width: 100%%; background-color: #ffffff;\">\n",
		c.contentWidth, c.contentWidth)
	sb.WriteString("<tr><td style=\"padding: 24px;\">\n")
	sb.WriteString(body)
	sb.WriteString("\n</td></tr>\n")
	sb.WriteString("</table>\n")
	sb.WriteString("</td></tr>\n")
	sb.WriteString("</table>\n")
	sb.WriteString("</body>\n</html>")

	return sb.String()
}
