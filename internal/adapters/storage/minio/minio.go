package minio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sk9212k/opaltech-aws/internal/config"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

// Adapter is an adapter for minio
type Adapter struct {
	client     *minio.Client
	bucketName string
	logger     *slog.Logger
}

// NewAdapter returns Adapter, creating the bucket when it does not exist yet
func NewAdapter(ctx context.Context, cfg config.MinioConfig, bucketName string, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("bucket created", slog.String("bucket", bucketName))
	}

	return &Adapter{client: client, bucketName: bucketName, logger: logger}, nil
}

// PutObject writes data under key, overwriting any previous object
func (a *Adapter) PutObject(ctx context.Context, key string, contentType string, data []byte) error {
	info, err := a.client.PutObject(ctx, a.bucketName, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}

	a.logger.Debug("object stored",
		slog.String("fileKey", key),
		slog.String("bucket", a.bucketName),
		slog.String("etag", info.ETag))

	return nil
}

// Ping checks the bucket is reachable
func (a *Adapter) Ping(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", a.bucketName)
	}
	return nil
}

// StatObject retrieves obj info
func (a *Adapter) StatObject(ctx context.Context, key string) (*domain.ObjectInfo, error) {
	info, err := a.client.StatObject(ctx, a.bucketName, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object info: %w", err)
	}
	return &domain.ObjectInfo{
		Key:         info.Key,
		SizeBytes:   info.Size,
		ContentType: info.ContentType,
		ETag:        info.ETag,
	}, nil
}
