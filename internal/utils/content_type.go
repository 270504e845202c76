package utils

import "strings"

// GetFileExtensionFromContentType maps a MIME content type to a short
// extension used when building storage keys for uploaded media.
func GetFileExtensionFromContentType(contentType string) string {
	contentType = strings.ToLower(contentType)

	switch {
	case strings.Contains(contentType, "jpeg") || strings.Contains(contentType, "jpg"):
		return "jpg"
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "svg"):
		return "svg"
	case strings.Contains(contentType, "gif"):
		return "gif"
	case strings.Contains(contentType, "webp"):
		return "webp"
	case strings.Contains(contentType, "pdf"):
		return "pdf"
	case strings.Contains(contentType, "mp4"):
		return "mp4"
	case strings.Contains(contentType, "quicktime"):
		return "mov"
	case strings.Contains(contentType, "webm"):
		return "webm"
	case strings.Contains(contentType, "word") || strings.Contains(contentType, "doc"):
		return "docx"
	case strings.Contains(contentType, "excel") || strings.Contains(contentType, "xls"):
		return "xlsx"
	case strings.Contains(contentType, "zip") || strings.Contains(contentType, "compressed"):
		return "zip"
	case strings.Contains(contentType, "text/plain"):
		return "txt"
	case strings.Contains(contentType, "csv"):
		return "csv"
	default:
		return "bin"
	}
}
