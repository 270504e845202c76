package interfaces

import (
	"context"

	"github.com/mailcanvas/mailcanvas/internal/models"
)

type MediaAssetRepository interface {
	Create(ctx context.Context, asset *models.MediaAsset) error
	GetByID(ctx context.Context, id string) (*models.MediaAsset, error)
	Store(ctx context.Context, asset *models.MediaAsset, data []byte) error
	GetData(ctx context.Context, asset *models.MediaAsset) ([]byte, error)
	Delete(ctx context.Context, id string) error
}
