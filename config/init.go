package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/mailcanvas/mailcanvas/internal/logger"
	"github.com/mailcanvas/mailcanvas/internal/tracing"
)

type Config struct {
	AppConfig            *AppConfig
	Logger               *logger.Config
	Tracing              *tracing.JaegerConfig
	CanvasDatabaseConfig *CanvasDatabaseConfig
	StorageConfig        *StorageConfig
	CronConfig           *CronConfig
}

func InitConfig() (*Config, error) {
	config := &Config{
		AppConfig:            &AppConfig{},
		Logger:               &logger.Config{},
		Tracing:              &tracing.JaegerConfig{},
		CanvasDatabaseConfig: &CanvasDatabaseConfig{},
		StorageConfig:        &StorageConfig{},
		CronConfig:           &CronConfig{},
	}

	err := godotenv.Load()
	if err != nil {
		log.Print("Unable to load .env file")
	}

	err = env.Parse(config)
	if err != nil {
		log.Fatalf("Error loading mailcanvas config: %v", err)
	}

	return config, nil
}
