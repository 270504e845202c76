package media

import (
	"context"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/log"

	"github.com/mailcanvas/mailcanvas/interfaces"
	er "github.com/mailcanvas/mailcanvas/internal/errors"
	"github.com/mailcanvas/mailcanvas/internal/logger"
	"github.com/mailcanvas/mailcanvas/internal/models"
	"github.com/mailcanvas/mailcanvas/internal/tracing"
	"github.com/mailcanvas/mailcanvas/internal/utils"
)

// allowedContentTypes lists the media kinds canvas components can
// reference: images for image and card components, video for the
// download-card component, pdf for attachments.
var allowedContentTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"application/pdf": true,
}

type mediaService struct {
	repository interfaces.MediaAssetRepository
	log        logger.Logger
}

func NewMediaService(repository interfaces.MediaAssetRepository, log logger.Logger) interfaces.MediaService {
	return &mediaService{
		repository: repository,
		log:        log,
	}
}

// Upload validates the file, stores it in object storage and records the
// asset so its public URL can be dropped into canvas components.
func (s *mediaService) Upload(ctx context.Context, filename, contentType string, data []byte) (*models.MediaAsset, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mediaService.Upload")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogFields(log.String("filename", filename), log.String("contentType", contentType), log.Int("size", len(data)))

	if len(data) == 0 {
		return nil, er.ErrEmptyUpload
	}

	normalizedType := strings.ToLower(strings.TrimSpace(contentType))
	if !allowedContentTypes[normalizedType] {
		tracing.TraceErr(span, er.ErrUnsupportedFileType)
		return nil, er.ErrUnsupportedFileType
	}

	originalFilename := filename
	if filename == "" {
		filename = "upload." + utils.GetFileExtensionFromContentType(normalizedType)
	}

	asset := &models.MediaAsset{
		Filename:    filename,
		ContentType: normalizedType,
		Metadata: models.JSONMap{
			"originalFilename": originalFilename,
			"source":           "editor-upload",
		},
	}

	if err := s.repository.Create(ctx, asset); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	if err := s.repository.Store(ctx, asset, data); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	return asset, nil
}

func (s *mediaService) GetByID(ctx context.Context, id string) (*models.MediaAsset, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mediaService.GetByID")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagEntity(span, id)

	return s.repository.GetByID(ctx, id)
}

// Download returns the asset record together with its stored bytes.
// A nil asset with a nil error means the id is unknown.
func (s *mediaService) Download(ctx context.Context, id string) (*models.MediaAsset, []byte, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mediaService.Download")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagEntity(span, id)

	asset, err := s.repository.GetByID(ctx, id)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, nil, err
	}
	if asset == nil {
		return nil, nil, nil
	}

	data, err := s.repository.GetData(ctx, asset)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, nil, err
	}
	return asset, data, nil
}

func (s *mediaService) Delete(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mediaService.Delete")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagEntity(span, id)

	return s.repository.Delete(ctx, id)
}
