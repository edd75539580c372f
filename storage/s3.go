package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store implements Store on an S3-compatible backend (AWS S3 or MinIO).
// Single bucket; keys map to object keys directly.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// S3Config holds explicit construction parameters (mostly for tests). For prod
// we rely primarily on environment variables.
type S3Config struct {
	Region    string
	Bucket    string
	Endpoint  string // optional; enables a custom endpoint (e.g. MinIO)
	PathStyle bool
	BaseURL   string // public URL prefix objects are served from
}

// Environment variables:
//
//	STORAGE_S3_BUCKET=<bucket> (required)
//	STORAGE_S3_REGION=<region> (default ap-northeast-2)
//	STORAGE_S3_ENDPOINT=<url> (optional, for MinIO)
//	STORAGE_S3_PATH_STYLE=true|false (default false)
//	STORAGE_PUBLIC_BASE_URL=<url> (optional; falls back to virtual-hosted URL)
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (optional, default chain otherwise)
func OpenS3FromEnv(ctx context.Context) (*S3Store, error) {
	bucket := os.Getenv("STORAGE_S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("STORAGE_S3_BUCKET required for s3 driver")
	}
	cfg := S3Config{
		Bucket:    bucket,
		Region:    os.Getenv("STORAGE_S3_REGION"),
		Endpoint:  os.Getenv("STORAGE_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("STORAGE_S3_PATH_STYLE"), "true"),
		BaseURL:   os.Getenv("STORAGE_PUBLIC_BASE_URL"),
	}
	return NewS3(ctx, cfg)
}

// NewS3 creates an S3 store from S3Config.
func NewS3(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "ap-northeast-2"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}
	return &S3Store{client: client, bucket: cfg.Bucket, baseURL: baseURL}, nil
}

func (s *S3Store) List(ctx context.Context, pathPrefix string) ([]Entry, error) {
	prefix := strings.TrimPrefix(pathPrefix, "/")
	entries := make([]Entry, 0)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			entry := Entry{
				Path: key,
				Name: key[strings.LastIndex(key, "/")+1:],
				Size: aws.ToInt64(obj.Size),
			}
			if obj.LastModified != nil {
				entry.LastModified = *obj.LastModified
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (s *S3Store) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(strings.TrimPrefix(key, "/")),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	_, err := s.client.PutObject(ctx, input)
	return err
}

func (s *S3Store) Remove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, types.ObjectIdentifier{
			Key: aws.String(strings.TrimPrefix(key, "/")),
		})
	}
	_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{Objects: objects},
	})
	return err
}

func (s *S3Store) PublicURL(key string) string {
	return s.baseURL + "/" + strings.TrimPrefix(key, "/")
}
