package interfaces

import (
	"context"

	"github.com/mailcanvas/mailcanvas/internal/models"
)

type MediaService interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (*models.MediaAsset, error)
	GetByID(ctx context.Context, id string) (*models.MediaAsset, error)
	Download(ctx context.Context, id string) (*models.MediaAsset, []byte, error)
	Delete(ctx context.Context, id string) error
}
