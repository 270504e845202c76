package canvas

import (
	"strconv"
)

// Properties is a heterogeneous property bag. Values arrive either as typed
// Go values (registry defaults) or as generic JSON values after a
// deserialize round-trip, so every accessor coerces both shapes and degrades
// malformed input to its fallback instead of failing.
type Properties map[string]interface{}

// SocialLink is one entry of a social-links component: platform label,
// target URL and icon glyph.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

func (p Properties) String(key, fallback string) string {
	if p == nil {
		return fallback
	}
	if value, ok := p[key].(string); ok {
		return value
	}
	return fallback
}

func (p Properties) Int(key string, fallback int) int {
	if p == nil {
		return fallback
	}
	switch value := p[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	case string:
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func (p Properties) Float(key string, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	switch value := p[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func (p Properties) Bool(key string, fallback bool) bool {
	if p == nil {
		return fallback
	}
	if value, ok := p[key].(bool); ok {
		return value
	}
	return fallback
}

// Strings reads an ordered list of strings (the `items`/`fields`/`headers`
// property shape). Non-array values and non-string entries degrade to an
// empty collection.
func (p Properties) Strings(key string) []string {
	if p == nil {
		return nil
	}
	switch value := p[key].(type) {
	case []string:
		return value
	case []interface{}:
		items := make([]string, 0, len(value))
		for _, entry := range value {
			if s, ok := entry.(string); ok {
				items = append(items, s)
			}
		}
		return items
	}
	return nil
}

// Links reads an ordered list of social link records. Wrong-shaped entries
// are skipped; a non-array value degrades to an empty collection.
func (p Properties) Links(key string) []SocialLink {
	if p == nil {
		return nil
	}
	switch value := p[key].(type) {
	case []SocialLink:
		return value
	case []interface{}:
		links := make([]SocialLink, 0, len(value))
		for _, entry := range value {
			record, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			link := SocialLink{}
			if s, ok := record["platform"].(string); ok {
				link.Platform = s
			}
			if s, ok := record["url"].(string); ok {
				link.URL = s
			}
			if s, ok := record["icon"].(string); ok {
				link.Icon = s
			}
			links = append(links, link)
		}
		return links
	}
	return nil
}

// Rows reads a 2D list of strings (the table `rows` shape). Malformed outer
// or inner values degrade to empty collections.
func (p Properties) Rows(key string) [][]string {
	if p == nil {
		return nil
	}
	switch value := p[key].(type) {
	case [][]string:
		return value
	case []interface{}:
		rows := make([][]string, 0, len(value))
		for _, entry := range value {
			switch cells := entry.(type) {
			case []string:
				rows = append(rows, cells)
			case []interface{}:
				row := make([]string, 0, len(cells))
				for _, cell := range cells {
					if s, ok := cell.(string); ok {
						row = append(row, s)
					}
				}
				rows = append(rows, row)
			}
		}
		return rows
	}
	return nil
}

// Clone returns a deep copy of the property bag. Registry defaults are cloned
// into every new instance so edits never leak back into the catalog.
func (p Properties) Clone() Properties {
	if p == nil {
		return Properties{}
	}
	clone := make(Properties, len(p))
	for key, value := range p {
		clone[key] = cloneValue(value)
	}
	return clone
}

func cloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []SocialLink:
		return append([]SocialLink(nil), v...)
	case [][]string:
		rows := make([][]string, len(v))
		for i, row := range v {
			rows[i] = append([]string(nil), row...)
		}
		return rows
	case []interface{}:
		entries := make([]interface{}, len(v))
		for i, entry := range v {
			entries[i] = cloneValue(entry)
		}
		return entries
	case map[string]interface{}:
		record := make(map[string]interface{}, len(v))
		for key, entry := range v {
			record[key] = cloneValue(entry)
		}
		return record
	default:
		return v
	}
}
