package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	socialconfig "snapfeed/internal/social/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Preview rendition parameters applied to every derived display URL.
const (
	previewWidth   = 2000
	previewHeight  = 2000
	previewGravity = "top"
	previewQuality = 100
)

// S3FileStore implements the FileStore port on an S3-compatible bucket.
type S3FileStore struct {
	client     *s3.Client
	bucket     string
	region     string
	publicBase string
}

// NewS3FileStore creates a new S3-backed file store. A non-empty endpoint
// switches to path-style addressing for MinIO and localstack.
func NewS3FileStore(ctx context.Context, cfg *socialconfig.Config) (*S3FileStore, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBase := cfg.MediaPublicBase
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3FileStore{
		client:     client,
		bucket:     cfg.S3Bucket,
		region:     cfg.S3Region,
		publicBase: publicBase,
	}, nil
}

// Upload stores the content under a fresh uuid key and returns it as the
// file ID.
func (s *S3FileStore) Upload(ctx context.Context, content io.Reader, contentType string) (string, error) {
	fileID := uuid.NewString()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(fileID),
		Body:        content,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return fileID, nil
}

// PreviewURL derives the display URL for a stored file with the fixed
// preview rendition parameters.
func (s *S3FileStore) PreviewURL(fileID string) string {
	q := url.Values{}
	q.Set("width", fmt.Sprintf("%d", previewWidth))
	q.Set("height", fmt.Sprintf("%d", previewHeight))
	q.Set("gravity", previewGravity)
	q.Set("quality", fmt.Sprintf("%d", previewQuality))
	return fmt.Sprintf("%s/%s?%s", s.publicBase, fileID, q.Encode())
}

// Delete removes a stored file by ID.
func (s *S3FileStore) Delete(ctx context.Context, fileID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file %s: %w", fileID, err)
	}
	return nil
}
