package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

const (
	StorageDriverMinio = "minio"
	StorageDriverS3    = "s3"
)

type Config struct {
	Env     Env
	Server  ServerConfig
	Storage StorageConfig
	Minio   MinioConfig
	S3      S3Config
	Upload  FileUploadConfig
	NATS    NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
	// RequestTimeout bounds every request handled by the router
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

type StorageConfig struct {
	Driver     string `envconfig:"STORAGE_DRIVER" default:"minio"`
	BucketName string `envconfig:"STORAGE_BUCKET_NAME" default:"opaltech-raw-data"`
}

type MinioConfig struct {
	Endpoint  string `envconfig:"MINIO_ENDPOINT"`
	AccessKey string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey string `envconfig:"MINIO_SECRET_KEY"`
	UseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

// S3Config leaves credentials empty to fall back on the default AWS chain
type S3Config struct {
	Region       string `envconfig:"S3_REGION" default:"us-east-1"`
	BaseEndpoint string `envconfig:"S3_BASE_ENDPOINT"`
	AccessKey    string `envconfig:"S3_ACCESS_KEY"`
	SecretKey    string `envconfig:"S3_SECRET_KEY"`
	UsePathStyle bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
}

type FileUploadConfig struct {
	MaxFileSize         int64              `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"0"` // 0 disables, 5242880 matches the client limit
	KeyStrategy         domain.KeyStrategy `envconfig:"UPLOAD_KEY_STRATEGY" default:"original"`
	ExposeStorageErrors bool               `envconfig:"UPLOAD_EXPOSE_STORAGE_ERRORS" default:"true"`
	StorageTimeout      time.Duration      `envconfig:"UPLOAD_STORAGE_TIMEOUT" default:"30s"`
}

// NATSConfig is optional, an empty URL disables upload events
type NATSConfig struct {
	URL          string `envconfig:"NATS_URL"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"UPLOADS"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"uploads.stored"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"upload-events"`
}

// UploaderConfig configures the command line uploader
type UploaderConfig struct {
	ServerURL string        `envconfig:"UPLOADER_SERVER_URL" default:"http://localhost:8080"`
	Timeout   time.Duration `envconfig:"UPLOADER_TIMEOUT" default:"0s"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func LoadUploader() (*UploaderConfig, error) {
	var cfg UploaderConfig

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields required by the selected storage driver
func (c *Config) Validate() error {
	if c.Storage.BucketName == "" {
		return fmt.Errorf("STORAGE_BUCKET_NAME is required")
	}

	switch c.Storage.Driver {
	case StorageDriverMinio:
		if c.Minio.Endpoint == "" || c.Minio.AccessKey == "" || c.Minio.SecretKey == "" {
			return fmt.Errorf("MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required for the minio driver")
		}
	case StorageDriverS3:
		if c.S3.Region == "" {
			return fmt.Errorf("S3_REGION is required for the s3 driver")
		}
		if (c.S3.AccessKey == "") != (c.S3.SecretKey == "") {
			return fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY must be set together")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Upload.KeyStrategy {
	case domain.KeyStrategyOriginal, domain.KeyStrategyUnique:
	default:
		return fmt.Errorf("unknown key strategy %q", c.Upload.KeyStrategy)
	}

	if c.Upload.MaxFileSize < 0 {
		return fmt.Errorf("UPLOAD_MAX_FILE_SIZE must not be negative")
	}

	if c.Server.RequestTimeout > 0 && c.Upload.StorageTimeout >= c.Server.RequestTimeout {
		return fmt.Errorf("UPLOAD_STORAGE_TIMEOUT (%s) must be shorter than SERVER_REQUEST_TIMEOUT (%s)",
			c.Upload.StorageTimeout, c.Server.RequestTimeout)
	}

	return nil
}
