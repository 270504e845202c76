package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/mailcanvas/mailcanvas/interfaces"
	"github.com/mailcanvas/mailcanvas/internal/models"
	"github.com/mailcanvas/mailcanvas/internal/tracing"
)

type mediaAssetRepository struct {
	db      *gorm.DB
	storage interfaces.StorageService
}

func NewMediaAssetRepository(db *gorm.DB, storageService interfaces.StorageService) interfaces.MediaAssetRepository {
	return &mediaAssetRepository{
		db:      db,
		storage: storageService,
	}
}

// Create adds a new media asset record to the database
func (r *mediaAssetRepository) Create(ctx context.Context, asset *models.MediaAsset) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mediaAssetRepository.Create")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	return r.db.WithContext(ctx).Create(asset).Error
}

// GetByID retrieves a media asset by its ID
func (r *mediaAssetRepository) GetByID(ctx context.Context, id string) (*models.MediaAsset, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mediaAssetRepository.GetByID")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var asset models.MediaAsset
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &asset, nil
}

// Store uploads the asset data to object storage and saves its record
func (r *mediaAssetRepository) Store(ctx context.Context, asset *models.MediaAsset, data []byte) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mediaAssetRepository.Store")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	if asset.StorageKey == "" {
		asset.StorageKey = fmt.Sprintf("%s/%s", asset.ID, asset.Filename)
	}

	if err := r.storage.Upload(ctx, asset.StorageKey, data, asset.ContentType); err != nil {
		tracing.TraceErr(span, err)
		return fmt.Errorf("failed to upload media asset: %w", err)
	}

	asset.Size = len(data)
	asset.PublicURL = r.storage.GetPublicURL(asset.StorageKey)
	asset.UpdatedAt = time.Now()

	return r.db.WithContext(ctx).Save(asset).Error
}

// GetData downloads the asset bytes from object storage
func (r *mediaAssetRepository) GetData(ctx context.Context, asset *models.MediaAsset) ([]byte, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mediaAssetRepository.GetData")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	if asset.StorageKey == "" {
		return nil, fmt.Errorf("media asset %s has no stored content", asset.ID)
	}

	data, err := r.storage.Download(ctx, asset.StorageKey)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, fmt.Errorf("failed to download media asset: %w", err)
	}
	return data, nil
}

// Delete removes a media asset from both database and storage
func (r *mediaAssetRepository) Delete(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mediaAssetRepository.Delete")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	asset, err := r.GetByID(ctx, id)
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	if asset == nil {
		return nil // already deleted
	}

	if asset.StorageKey != "" {
		if err := r.storage.Delete(ctx, asset.StorageKey); err != nil {
			// keep going, the database row is the source of truth
			tracing.TraceErr(span, err)
		}
	}

	return r.db.WithContext(ctx).Delete(&models.MediaAsset{}, "id = ?", id).Error
}
