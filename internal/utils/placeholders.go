package utils

import (
	"regexp"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.]+)\s*\}\}`)

// ExtractPlaceholders collects {{name}} tokens from the given texts, in first
// occurrence order, without duplicates.
func ExtractPlaceholders(texts ...string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, text := range texts {
		for _, match := range placeholderRegex.FindAllStringSubmatch(text, -1) {
			name := match[1]
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// SubstitutePlaceholders replaces {{name}} tokens with values from the map.
// Tokens without a value are left in place untouched.
func SubstitutePlaceholders(text string, values map[string]string) string {
	if len(values) == 0 {
		return text
	}
	return placeholderRegex.ReplaceAllStringFunc(text, func(token string) string {
		name := placeholderRegex.FindStringSubmatch(token)[1]
		if value, ok := values[name]; ok {
			return value
		}
		return token
	})
}

// FileExtensionFromURL derives the display extension for a file reference:
// the part after the last path separator, then after the last dot, lowercased
// and truncated to three characters. Returns "file" when nothing usable is
// present.
func FileExtensionFromURL(url string) string {
	name := url
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	dot := strings.LastIndex(name, ".")
	if dot < 0 || dot == len(name)-1 {
		return "file"
	}
	ext := strings.ToLower(name[dot+1:])
	if len(ext) > 3 {
		ext = ext[:3]
	}
	return ext
}

// FileNameFromURL returns the last path segment of a URL, or the URL itself
// when it has no path separators.
func FileNameFromURL(url string) string {
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		return url[idx+1:]
	}
	return url
}
