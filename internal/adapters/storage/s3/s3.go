package s3

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sk9212k/opaltech-aws/internal/config"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

// API is the subset of the S3 client used by Adapter
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// Adapter is an adapter for AWS S3 and S3 compatible stores
type Adapter struct {
	client     API
	bucketName string
	logger     *slog.Logger
}

// NewAdapter loads the AWS configuration and returns Adapter.
// Static credentials are used when provided, otherwise the default chain applies.
func NewAdapter(ctx context.Context, cfg config.S3Config, bucketName string, logger *slog.Logger) (*Adapter, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return NewAdapterWithClient(client, bucketName, logger), nil
}

// NewAdapterWithClient returns Adapter around an existing client
func NewAdapterWithClient(client API, bucketName string, logger *slog.Logger) *Adapter {
	return &Adapter{client: client, bucketName: bucketName, logger: logger}
}

// PutObject writes data under key, overwriting any previous object
func (a *Adapter) PutObject(ctx context.Context, key string, contentType string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(a.bucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	out, err := a.client.PutObject(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}

	a.logger.Debug("object stored",
		slog.String("fileKey", key),
		slog.String("bucket", a.bucketName),
		slog.String("etag", aws.ToString(out.ETag)))

	return nil
}

// Ping checks the bucket is reachable with the configured credentials
func (a *Adapter) Ping(ctx context.Context) error {
	_, err := a.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(a.bucketName)})
	if err != nil {
		return fmt.Errorf("failed to head bucket %s: %w", a.bucketName, err)
	}
	return nil
}

// StatObject retrieves obj info
func (a *Adapter) StatObject(ctx context.Context, key string) (*domain.ObjectInfo, error) {
	out, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object info: %w", err)
	}
	return &domain.ObjectInfo{
		Key:         key,
		SizeBytes:   aws.ToInt64(out.ContentLength),
		ContentType: aws.ToString(out.ContentType),
		ETag:        aws.ToString(out.ETag),
	}, nil
}
