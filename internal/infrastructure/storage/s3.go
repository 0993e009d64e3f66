// Package storage implements the image byte store on S3-compatible
// object storage (AWS S3 or MinIO).
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Config captures the settings for the S3 image store.
type Config struct {
	Region       string
	Bucket       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// ImageStore stores photo bytes in an S3 bucket and returns the object
// key as the opaque reference.
type ImageStore struct {
	client *s3.Client
	bucket string
}

// NewImageStore builds the S3 client. BaseEndpoint is optional and allows
// pointing at MinIO in development.
func NewImageStore(ctx context.Context, cfg Config) (*ImageStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &ImageStore{client: client, bucket: cfg.Bucket}, nil
}

// Store uploads the bytes under a generated key and returns the key.
func (s *ImageStore) Store(ctx context.Context, r io.Reader, ext, contentType string) (string, error) {
	key := storageKey(ext)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	return key, nil
}

// storageKey spreads objects by upload date so buckets stay browsable.
func storageKey(ext string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("photos/%d/%02d/%02d/%s.%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}
