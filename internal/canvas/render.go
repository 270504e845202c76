package canvas

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/mailcanvas/mailcanvas/internal/enum"
	"github.com/mailcanvas/mailcanvas/internal/utils"
)

func (c *Compiler) renderHeading(sb *strings.Builder, props Properties) {
	level := props.Int("level", 2)
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	align := props.String("align", "left")
	color := props.String("color", "#333333")
	text := props.String("text", "")

	fmt.Fprintf(sb,
		"<h%d style=\"text-align: %s; color: %s; margin: 0 0 16px 0;\">%s</h%d>",
		level, esc(align), esc(color), esc(text), level)
}

func (c *Compiler) renderParagraph(sb *strings.Builder, props Properties) {
	align := props.String("align", "left")
	color := props.String("color", "#333333")
	fontSize := props.Int("fontSize", 16)
	text := props.String("text", "")

	fmt.Fprintf(sb,
		"<p style=\"text-align: %s; color: %s; font-size: %dpx; line-height: 1.6; margin: 0 0 16px 0;\">%s</p>",
		esc(align), esc(color), fontSize, esc(text))
}

func (c *Compiler) renderQuote(sb *strings.Builder, props Properties) {
	color := props.String("color", "#555555")
	borderColor := props.String("borderColor", "#cccccc")
	text := props.String("text", "")
	author := props.String("author", "")

	fmt.Fprintf(sb,
		"<blockquote style=\"border-left: 4px solid %s; margin: 0 0 16px 0; padding: 8px 0 8px 16px; color: %s; font-style: italic;\">%s",
		esc(borderColor), esc(color), esc(text))
	if author != "" {
		fmt.Fprintf(sb, "<div style=\"margin-top: 8px; font-style: normal; font-size: 14px;\">&mdash; %s</div>", esc(author))
	}
	sb.WriteString("</blockquote>")
}

func (c *Compiler) renderContainer(sb *strings.Builder, instance *ComponentInstance) {
	props := instance.Properties
	backgroundColor := props.String("backgroundColor", "#ffffff")
	padding := props.Int("padding", 20)

	fmt.Fprintf(sb,
		"<div style=\"background-color: %s; padding: %dpx; margin: 0 0 16px 0;\">%s</div>",
		esc(backgroundColor), padding, c.renderChildren(instance))
}

func (c *Compiler) renderRow(sb *strings.Builder, instance *ComponentInstance) {
	props := instance.Properties
	backgroundColor := props.String("backgroundColor", "")
	padding := props.Int("padding", 0)

	style := fmt.Sprintf("padding: %dpx;", padding)
	if backgroundColor != "" {
		style = fmt.Sprintf("background-color: %s; %s", esc(backgroundColor), style)
	}

	fmt.Fprintf(sb,
		"<table role=\"presentation\" width=\"100%%\" cellpadding=\"0\" cellspacing=\"0\" border=\"0\" style=\"margin: 0 0 16px 0; %s\"><tr>%s</tr></table>",
		style, c.renderChildren(instance))
}

func (c *Compiler) renderColumn(sb *strings.Builder, instance *ComponentInstance) {
	props := instance.Properties
	width := props.String("width", "50%")
	padding := props.Int("padding", 10)

	fmt.Fprintf(sb,
		"<td width=\"%s\" valign=\"top\" style=\"padding: %dpx;\">%s</td>",
		esc(width), padding, c.renderChildren(instance))
}

func buttonStyle(variant enum.ButtonVariant, backgroundColor, color string, borderRadius int) string {
	base := fmt.Sprintf("display: inline-block; padding: 12px 24px; text-decoration: none; border-radius: %dpx; font-weight: bold;", borderRadius)

	switch variant {
	case enum.ButtonSecondary:
		return fmt.Sprintf("background-color: #6c757d; color: #ffffff; %s", base)
	case enum.ButtonOutline:
		return fmt.Sprintf("background-color: transparent; color: %s; border: 2px solid %s; %s", backgroundColor, backgroundColor, base)
	default:
		return fmt.Sprintf("background-color: %s; color: %s; %s", backgroundColor, color, base)
	}
}

func (c *Compiler) renderButton(sb *strings.Builder, props Properties) {
	align := props.String("align", "center")
	text := props.String("text", "")
	url := props.String("url", "#")
	variant := enum.ButtonVariant(props.String("variant", enum.ButtonPrimary.String()))
	backgroundColor := esc(props.String("backgroundColor", "#007bff"))
	color := esc(props.String("color", "#ffffff"))
	borderRadius := props.Int("borderRadius", 4)

	fmt.Fprintf(sb,
		"<div style=\"text-align: %s; margin: 0 0 16px 0;\"><a href=\"%s\" style=\"%s\">%s</a></div>",
		esc(align), esc(url), buttonStyle(variant, backgroundColor, color, borderRadius), esc(text))
}

func (c *Compiler) renderCallToAction(sb *strings.Builder, props Properties) {
	title := props.String("title", "")
	text := props.String("text", "")
	buttonText := props.String("buttonText", "")
	buttonURL := props.String("buttonUrl", "#")
	variant := enum.ButtonVariant(props.String("variant", enum.ButtonPrimary.String()))
	backgroundColor := props.String("backgroundColor", "#f8f9fa")

	fmt.Fprintf(sb, "<div style=\"background-color: %s; padding: 32px 24px; text-align: center; margin: 0 0 16px 0;\">", esc(backgroundColor))
	if title != "" {
		fmt.Fprintf(sb, "<h3 style=\"color: #333333; margin: 0 0 8px 0;\">%s</h3>", esc(title))
	}
	if text != "" {
		fmt.Fprintf(sb, "<p style=\"color: #555555; margin: 0 0 16px 0;\">%s</p>", esc(text))
	}
	fmt.Fprintf(sb, "<a href=\"%s\" style=\"%s\">%s</a>",
		esc(buttonURL), buttonStyle(variant, "#007bff", "#ffffff", 4), esc(buttonText))
	sb.WriteString("</div>")
}

const imagePlaceholderSrc = "https://placehold.co/560x300?text=Image"

func (c *Compiler) renderImage(sb *strings.Builder, props Properties) {
	src := props.String("src", "")
	if src == "" {
		src = imagePlaceholderSrc
	}
	alt := props.String("alt", "Image")
	width := props.Int("width", 560)
	height := props.Int("height", 0)

	heightAttr := ""
	if height > 0 {
		heightAttr = fmt.Sprintf(" height=\"%d\"", height)
	}

	fmt.Fprintf(sb,
		"<div style=\"text-align: center; margin: 0 0 16px 0;\"><img src=\"%s\" alt=\"%s\" width=\"%d\"%s style=\"max-width: 100%%; border: 0; display: inline-block;\" /></div>",
		esc(src), esc(alt), width, heightAttr)
}

// renderFileCard is the rendering rule for the "video" component type. Email
// clients cannot reliably play embedded video, so the compiled output is a
// static file-attachment card with a download link instead of a player.
func (c *Compiler) renderFileCard(sb *strings.Builder, props Properties) {
	src := props.String("src", "")
	label := props.String("label", "Download attachment")

	fileName := "attachment"
	ext := "file"
	if src != "" {
		fileName = utils.FileNameFromURL(src)
		ext = utils.FileExtensionFromURL(src)
	}
	href := src
	if href == "" {
		href = "#"
	}

	sb.WriteString("<div style=\"border: 1px solid #e0e0e0; border-radius: 6px; padding: 16px; margin: 0 0 16px 0;\">")
	sb.WriteString("<table role=\"presentation\" cellpadding=\"0\" cellspacing=\"0\" border=\"0\"><tr>")
	fmt.Fprintf(sb,
		"<td width=\"48\"><div style=\"width: 48px; height: 48px; line-height: 48px; background-color: #f0f0f0; border-radius: 6px; text-align: center; font-size: 12px; font-weight: bold; text-transform: uppercase; color: #555555;\">%s</div></td>",
		esc(ext))
	fmt.Fprintf(sb,
		"<td style=\"padding-left: 12px;\"><div style=\"font-weight: bold; color: #333333; margin: 0 0 4px 0;\">%s</div><a href=\"%s\" download style=\"color: #007bff; text-decoration: none;\">%s</a></td>",
		esc(fileName), esc(href), esc(label))
	sb.WriteString("</tr></table></div>")
}

func (c *Compiler) renderList(sb *strings.Builder, props Properties, tag string) {
	color := props.String("color", "#333333")
	items := props.Strings("items")

	fmt.Fprintf(sb, "<%s style=\"color: %s; margin: 0 0 16px 0; padding-left: 24px;\">", tag, esc(color))
	for _, item := range items {
		fmt.Fprintf(sb, "<li style=\"margin: 0 0 8px 0;\">%s</li>", esc(item))
	}
	fmt.Fprintf(sb, "</%s>", tag)
}

func (c *Compiler) renderDivider(sb *strings.Builder, props Properties) {
	color := props.String("color", "#e0e0e0")
	thickness := props.Int("thickness", 1)

	fmt.Fprintf(sb,
		"<hr style=\"border: none; border-top: %dpx solid %s; margin: 16px 0;\" />",
		thickness, esc(color))
}

func (c *Compiler) renderSpacer(sb *strings.Builder, props Properties) {
	height := props.Int("height", 24)

	fmt.Fprintf(sb,
		"<div style=\"height: %dpx; line-height: %dpx; font-size: 0;\">&nbsp;</div>",
		height, height)
}

func (c *Compiler) renderCard(sb *strings.Builder, instance *ComponentInstance) {
	props := instance.Properties
	title := props.String("title", "")
	text := props.String("text", "")
	backgroundColor := props.String("backgroundColor", "#ffffff")
	borderColor := props.String("borderColor", "#e0e0e0")

	fmt.Fprintf(sb,
		"<div style=\"background-color: %s; border: 1px solid %s; border-radius: 6px; padding: 20px; margin: 0 0 16px 0;\">",
		esc(backgroundColor), esc(borderColor))
	if title != "" {
		fmt.Fprintf(sb, "<h3 style=\"color: #333333; margin: 0 0 8px 0;\">%s</h3>", esc(title))
	}
	if text != "" {
		fmt.Fprintf(sb, "<p style=\"color: #555555; margin: 0 0 8px 0;\">%s</p>", esc(text))
	}
	sb.WriteString(c.renderChildren(instance))
	sb.WriteString("</div>")
}

func (c *Compiler) renderSocialLinks(sb *strings.Builder, props Properties) {
	links := props.Links("links")

	sb.WriteString("<div style=\"text-align: center; margin: 0 0 16px 0;\">")
	for _, link := range links {
		fmt.Fprintf(sb,
			"<a href=\"%s\" title=\"%s\" style=\"display: inline-block; width: 36px; height: 36px; line-height: 36px; border-radius: 50%%; background-color: #f0f0f0; text-align: center; text-decoration: none; margin: 0 4px;\">%s</a>",
			esc(link.URL), esc(link.Platform), esc(link.Icon))
	}
	sb.WriteString("</div>")
}

// renderContactForm emits a real HTML form posting to the configured
// external form-submission endpoint. The hidden formId field correlates
// submissions back to the template that produced them.
func (c *Compiler) renderContactForm(sb *strings.Builder, props Properties) {
	title := props.String("title", "Contact us")
	buttonText := props.String("buttonText", "Send")
	fields := props.Strings("fields")
	formID := props.String("formId", "")

	fmt.Fprintf(sb, "<form action=\"%s\" method=\"POST\" style=\"margin: 0 0 16px 0;\">", esc(c.formEndpoint))
	if title != "" {
		fmt.Fprintf(sb, "<h3 style=\"color: #333333; margin: 0 0 12px 0;\">%s</h3>", esc(title))
	}
	fmt.Fprintf(sb, "<input type=\"hidden\" name=\"formId\" value=\"%s\" />", esc(formID))
	for _, field := range fields {
		name := strings.ReplaceAll(strings.ToLower(field), " ", "_")
		fmt.Fprintf(sb,
			"<div style=\"margin: 0 0 12px 0;\"><label style=\"color: #333333; font-size: 14px;\">%s</label><br /><input type=\"text\" name=\"%s\" style=\"width: 100%%; padding: 8px; border: 1px solid #cccccc; border-radius: 4px;\" /></div>",
			esc(field), esc(name))
	}
	fmt.Fprintf(sb,
		"<button type=\"submit\" style=\"%s border: none; cursor: pointer;\">%s</button>",
		buttonStyle(enum.ButtonPrimary, "#007bff", "#ffffff", 4), esc(buttonText))
	sb.WriteString("</form>")
}

func (c *Compiler) renderTable(sb *strings.Builder, props Properties) {
	headers := props.Strings("headers")
	rows := props.Rows("rows")
	striped := props.Bool("striped", true)

	sb.WriteString("<table width=\"100%\" cellpadding=\"0\" cellspacing=\"0\" border=\"0\" style=\"border-collapse: collapse; margin: 0 0 16px 0;\">")
	if len(headers) > 0 {
		sb.WriteString("<tr>")
		for _, header := range headers {
			fmt.Fprintf(sb,
				"<th style=\"padding: 8px 12px; border: 1px solid #e0e0e0; background-color: #f8f9fa; color: #333333; text-align: left;\">%s</th>",
				esc(header))
		}
		sb.WriteString("</tr>")
	}
	for i, row := range rows {
		rowStyle := ""
		if striped && i%2 == 1 {
			rowStyle = " style=\"background-color: #f8f9fa;\""
		}
		fmt.Fprintf(sb, "<tr%s>", rowStyle)
		for _, cell := range row {
			fmt.Fprintf(sb, "<td style=\"padding: 8px 12px; border: 1px solid #e0e0e0; color: #333333;\">%s</td>", esc(cell))
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
}

// renderProgressBar simulates a filled bar with two nested divs; the native
// progress element is not supported by email clients. The percentage is
// inserted as-is, without clamping.
func (c *Compiler) renderProgressBar(sb *strings.Builder, props Properties) {
	label := props.String("label", "")
	percentage := props.Float("percentage", 0)
	color := props.String("color", "#28a745")
	backgroundColor := props.String("backgroundColor", "#e9ecef")

	pct := strconv.FormatFloat(percentage, 'f', -1, 64)

	sb.WriteString("<div style=\"margin: 0 0 16px 0;\">")
	if label != "" {
		fmt.Fprintf(sb, "<div style=\"color: #333333; font-size: 14px; margin: 0 0 4px 0;\">%s (%s%%)</div>", esc(label), pct)
	}
	fmt.Fprintf(sb,
		"<div style=\"background-color: %s; border-radius: 8px; height: 16px;\"><div style=\"background-color: %s; width: %s%%; height: 16px; border-radius: 8px;\"></div></div>",
		esc(backgroundColor), esc(color), pct)
	sb.WriteString("</div>")
}

type alertPalette struct {
	background string
	border     string
	text       string
}

var alertPalettes = map[enum.AlertSeverity]alertPalette{
	enum.AlertInfo:    {background: "#d1ecf1", border: "#bee5eb", text: "#0c5460"},
	enum.AlertSuccess: {background: "#d4edda", border: "#c3e6cb", text: "#155724"},
	enum.AlertWarning: {background: "#fff3cd", border: "#ffeeba", text: "#856404"},
	enum.AlertDanger:  {background: "#f8d7da", border: "#f5c6cb", text: "#721c24"},
}

func (c *Compiler) renderAlert(sb *strings.Builder, props Properties) {
	text := props.String("text", "")
	severity := enum.AlertSeverity(props.String("severity", enum.AlertInfo.String()))
	dismissible := props.Bool("dismissible", false)

	palette, ok := alertPalettes[severity]
	if !ok {
		palette = alertPalettes[enum.AlertInfo]
	}

	fmt.Fprintf(sb,
		"<div style=\"background-color: %s; border: 1px solid %s; color: %s; padding: 12px 16px; border-radius: 4px; margin: 0 0 16px 0;\">",
		palette.background, palette.border, palette.text)
	if dismissible {
		// purely visual; nothing to dismiss in an email client
		sb.WriteString("<span style=\"float: right; font-weight: bold;\">&times;</span>")
	}
	sb.WriteString(esc(text))
	sb.WriteString("</div>")
}

func (c *Compiler) renderUnknown(sb *strings.Builder, t ComponentType) {
	fmt.Fprintf(sb,
		"<div style=\"border: 2px dashed #dc3545; background-color: #fff5f5; color: #dc3545; padding: 16px; margin: 0 0 16px 0; text-align: center;\">Unknown component: %s</div>",
		esc(t.String()))
}

func esc(s string) string {
	return html.EscapeString(s)
}
