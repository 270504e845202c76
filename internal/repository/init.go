package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/mailcanvas/mailcanvas/config"
	"github.com/mailcanvas/mailcanvas/interfaces"
	"github.com/mailcanvas/mailcanvas/internal/models"
	"github.com/mailcanvas/mailcanvas/services/storage"
)

type Repositories struct {
	TemplateRepository   interfaces.TemplateRepository
	MediaAssetRepository interfaces.MediaAssetRepository
}

func InitRepositories(canvasDB *gorm.DB, storageConfig *config.StorageConfig) (*Repositories, error) {
	mediaStorage, err := initMediaStorage(storageConfig)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		TemplateRepository:   NewTemplateRepository(canvasDB),
		MediaAssetRepository: NewMediaAssetRepository(canvasDB, mediaStorage),
	}, nil
}

// initMediaStorage prefers R2 when its account id is configured and falls
// back to plain S3 otherwise.
func initMediaStorage(cfg *config.StorageConfig) (interfaces.StorageService, error) {
	if cfg.R2AccountID != "" {
		return storage.NewR2StorageService(
			cfg.R2AccountID,
			cfg.R2AccessKeyID,
			cfg.R2AccessKeySecret,
			cfg.MediaBucket,
			cfg.CDNDomain,
		)
	}
	return storage.NewS3StorageService(
		cfg.S3Region,
		cfg.S3AccessKeyID,
		cfg.S3AccessKeySecret,
		cfg.MediaBucket,
		cfg.CDNDomain,
	)
}

func MigrateDB(dbConfig *config.CanvasDatabaseConfig, canvasDB *gorm.DB) error {
	db, err := canvasDB.DB()
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(5)

	err = canvasDB.AutoMigrate(
		&models.EmailTemplate{},
		&models.MediaAsset{},
	)

	db.Close()

	db, _ = canvasDB.DB()
	db.SetMaxIdleConns(dbConfig.MaxIdleConn)
	db.SetMaxOpenConns(dbConfig.MaxConn)
	db.SetConnMaxLifetime(time.Duration(dbConfig.ConnMaxLifetime) * time.Minute)

	return err
}
