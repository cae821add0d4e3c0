package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	internalConfig "github.com/eventify/eventify-backend/internal/config"
)

// S3Storage keeps uploads in an S3-compatible bucket (AWS S3 or Cloudflare
// R2 via a custom endpoint). Selected with STORAGE_DRIVER=s3.
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

var _ Storage = (*S3Storage)(nil)

func NewS3Storage(cfg *internalConfig.Config) (*S3Storage, error) {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(cfg.S3.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)),
	}

	if cfg.S3.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: cfg.S3.Endpoint}, nil
		})
		opts = append(opts, awsConfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.S3.Bucket,
		publicURL: strings.TrimSuffix(cfg.S3.PublicURL, "/"),
	}, nil
}

func (s *S3Storage) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentLength: aws.Int64(file.Size),
	}
	if contentType := file.Header.Get("Content-Type"); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(context.TODO(), input); err != nil {
		return "", fmt.Errorf("failed to upload to bucket: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

func (s *S3Storage) Delete(publicPath string) error {
	if publicPath == "" {
		return nil
	}

	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path.Base(publicPath)),
	}

	_, err := s.client.DeleteObject(context.TODO(), input)
	return err
}
