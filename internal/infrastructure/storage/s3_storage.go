// Package storage provides object storage implementations for avatar uploads.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	identityapp "github.com/taskflow/backend/internal/application/identity"
	infraconfig "github.com/taskflow/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure S3AvatarStorage implements AvatarStorage
var _ identityapp.AvatarStorage = (*S3AvatarStorage)(nil)

// S3AvatarStorage implements AvatarStorage using AWS S3 SDK v2.
// It is compatible with any S3-compatible storage (AWS S3, MinIO, etc.)
type S3AvatarStorage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	logger        *zap.Logger
}

// S3AvatarStorageOption is a functional option for configuring S3AvatarStorage
type S3AvatarStorageOption func(*S3AvatarStorage)

// WithLogger sets a custom logger for S3AvatarStorage
func WithLogger(logger *zap.Logger) S3AvatarStorageOption {
	return func(s *S3AvatarStorage) {
		s.logger = logger
	}
}

// NewS3AvatarStorage creates a new S3AvatarStorage from configuration.
func NewS3AvatarStorage(cfg *infraconfig.StorageConfig, opts ...S3AvatarStorageOption) (*S3AvatarStorage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKeyID == "" {
		return nil, errors.New("storage access key is required")
	}
	if cfg.SecretAccessKey == "" {
		return nil, errors.New("storage secret key is required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	endpoint := cfg.Endpoint
	if endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		if _, err := url.Parse(endpoint); err != nil {
			return nil, fmt.Errorf("invalid storage endpoint: %w", err)
		}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	storage := &S3AvatarStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        zap.NewNop(),
	}

	for _, opt := range opts {
		opt(storage)
	}

	return storage, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
// Call this during application startup to ensure the bucket is ready.
func (s *S3AvatarStorage) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	s.logger.Info("Creating storage bucket", zap.String("bucket", s.bucket))
	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		// Racing startup instances may have created it already
		var alreadyOwned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &alreadyOwned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	s.logger.Info("Storage bucket created successfully", zap.String("bucket", s.bucket))
	return nil
}

// Upload uploads data directly to storage.
func (s *S3AvatarStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(storageKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}

	return nil
}

// PublicURL returns the publicly reachable URL for a stored object.
func (s *S3AvatarStorage) PublicURL(storageKey string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + storageKey
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, storageKey)
}

// GetBucket returns the bucket name
func (s *S3AvatarStorage) GetBucket() string {
	return s.bucket
}
