package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/studio-booking/internal/config"
)

// S3API is the subset of the S3 client used by Store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Store keeps service images in an S3 bucket.
type Store struct {
	client   S3API
	bucket   string
	baseURL  string
	maxWidth int
}

func NewStore(client S3API, bucket, baseURL string, maxWidth int) *Store {
	return &Store{
		client:   client,
		bucket:   bucket,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxWidth: maxWidth,
	}
}

// NewS3Client builds a client from static credentials. A custom endpoint
// switches to path-style addressing for S3-compatible servers.
func NewS3Client(cfg config.MediaConfig) *s3.Client {
	return s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	}, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}

func FromConfig(cfg config.MediaConfig) *Store {
	base := cfg.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return NewStore(NewS3Client(cfg), cfg.Bucket, base, cfg.MaxWidth)
}

func ServiceImageKey(serviceID string) string {
	return "services/" + serviceID + ".webp"
}

// PutImage converts data to WebP and uploads it under key.
func (s *Store) PutImage(ctx context.Context, key string, data []byte) error {
	out, err := ConvertToWebP(data, s.maxWidth)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(out),
		ContentType:  aws.String(ContentTypeWebP),
		CacheControl: aws.String("public, max-age=86400"),
	})
	if err != nil {
		return fmt.Errorf("media: s3 put %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("media: s3 delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.baseURL + "/" + key
}
