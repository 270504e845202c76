package config

import (
	"github.com/mailcanvas/mailcanvas/internal/logger"
	"github.com/mailcanvas/mailcanvas/internal/tracing"
)

type AppConfig struct {
	APIPort         string `env:"PORT,required" envDefault:"12333"`
	APIKey          string `env:"API_KEY,required"`
	RabbitMQURL     string `env:"RABBITMQ_URL"`
	FormEndpointURL string `env:"FORM_ENDPOINT_URL" envDefault:"https://forms.mailcanvas.io/submit"`
	Logger          *logger.Config
	Tracing         *tracing.JaegerConfig
}

type CanvasDatabaseConfig struct {
	Host            string `env:"CANVAS_POSTGRES_HOST,required"`
	Port            string `env:"CANVAS_POSTGRES_PORT,required"`
	User            string `env:"CANVAS_POSTGRES_USER,required"`
	DBName          string `env:"CANVAS_POSTGRES_DB_NAME,required"`
	Password        string `env:"CANVAS_POSTGRES_PASSWORD,required"`
	MaxConn         int    `env:"CANVAS_POSTGRES_DB_MAX_CONN"`
	MaxIdleConn     int    `env:"CANVAS_POSTGRES_DB_MAX_IDLE_CONN"`
	ConnMaxLifetime int    `env:"CANVAS_POSTGRES_DB_CONN_MAX_LIFETIME"`
	LogLevel        string `env:"CANVAS_POSTGRES_LOG_LEVEL" envDefault:"WARN"`
	SSLMode         string `env:"CANVAS_POSTGRES_SSL_MODE" envDefault:"require"`
}

// StorageConfig selects the media storage backend: Cloudflare R2 when an
// account id is set, plain AWS S3 otherwise.
type StorageConfig struct {
	R2AccountID       string `env:"CLOUDFLARE_R2_ACCOUNT_ID"`
	R2AccessKeyID     string `env:"CLOUDFLARE_R2_ACCESS_KEY_ID"`
	R2AccessKeySecret string `env:"CLOUDFLARE_R2_ACCESS_KEY_SECRET"`
	S3Region          string `env:"AWS_S3_REGION"`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3AccessKeySecret string `env:"AWS_SECRET_ACCESS_KEY"`
	MediaBucket       string `env:"BUCKET_NAME_MEDIA" envDefault:"media"`
	CDNDomain         string `env:"MEDIA_CDN_DOMAIN"`
}

type CronConfig struct {
	// Heartbeat check, every minute
	CronScheduleHeartbeat string `env:"CRON_SCHEDULE_HEARTBEAT" envDefault:"0 * * * * *"`
	// Template HTML self-heal, nightly at 3am
	CronScheduleRegenerateTemplates string `env:"CRON_SCHEDULE_REGENERATE_TEMPLATES" envDefault:"0 0 3 * * *"`
}
