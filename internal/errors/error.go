package errors

import "github.com/pkg/errors"

var (
	// persistence bridge errors
	ErrInvalidDocumentPayload = errors.New("stored document payload is not a component array")

	// template errors
	ErrTemplateNotFound = errors.New("template not found")

	// media errors
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyUpload         = errors.New("uploaded file is empty")
)
