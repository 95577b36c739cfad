package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Bucket MIME allowlist. Anything else is rejected by the direct path and
// lands on the local-disk fallback instead.
var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// ErrUnsupportedMimeType marks the one failure mode that triggers the
// fallback chain instead of aborting the upload.
var ErrUnsupportedMimeType = fmt.Errorf("unsupported MIME type for bucket upload")

// Result describes where an uploaded file ended up
type Result struct {
	StoredFileName string
	StorageKey     string
	Storage        string // "s3" or "local"
}

// Interface defines the storage operations used by the upload paths
type Interface interface {
	Upload(ctx context.Context, reservationNumber, category, originalName, mimeType string, data []byte) (*Result, error)
}

// S3Storage uploads files to the application-files bucket under
// <reservationNumber>/<category>/<generated filename>.
type S3Storage struct {
	client *s3.Client
	bucket string
}

// NewS3Storage initializes the S3-backed storage from environment configuration
func NewS3Storage(ctx context.Context) (*S3Storage, error) {
	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(os.Getenv("AWS_REGION")),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	bucket := os.Getenv("AWS_S3_BUCKET")
	if bucket == "" {
		bucket = "application-files"
	}

	return &S3Storage{
		client: s3.NewFromConfig(awsConfig),
		bucket: bucket,
	}, nil
}

// Upload puts the file into the bucket. Unsupported MIME types return
// ErrUnsupportedMimeType so the caller can fall back.
func (s *S3Storage) Upload(ctx context.Context, reservationNumber, category, originalName, mimeType string, data []byte) (*Result, error) {
	if !allowedMimeTypes[strings.ToLower(mimeType)] {
		return nil, ErrUnsupportedMimeType
	}

	storedName := generateFileName(originalName)
	key := fmt.Sprintf("%s/%s/%s", reservationNumber, category, storedName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &Result{StoredFileName: storedName, StorageKey: key, Storage: "s3"}, nil
}

// GetPresignedURL generates a presigned URL for accessing a stored object
func (s *S3Storage) GetPresignedURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	presignClient := s3.NewPresignClient(s.client)
	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return request.URL, nil
}

// LocalStorage writes files under a base directory using the same path
// convention as the bucket. It is the fallback target of the upload API route.
type LocalStorage struct {
	BaseDir string
}

func NewLocalStorage() *LocalStorage {
	baseDir := os.Getenv("UPLOAD_DIR")
	if baseDir == "" {
		baseDir = "uploaded_files"
	}
	return &LocalStorage{BaseDir: baseDir}
}

func (l *LocalStorage) Upload(_ context.Context, reservationNumber, category, originalName, mimeType string, data []byte) (*Result, error) {
	storedName := generateFileName(originalName)
	dir := filepath.Join(l.BaseDir, reservationNumber, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(dir, storedName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &Result{StoredFileName: storedName, StorageKey: path, Storage: "local"}, nil
}

// FallbackStorage tries the bucket first and falls back to local disk only
// when the bucket rejects the MIME type. Every other error is returned as is.
type FallbackStorage struct {
	Primary  Interface
	Fallback Interface
}

func (f *FallbackStorage) Upload(ctx context.Context, reservationNumber, category, originalName, mimeType string, data []byte) (*Result, error) {
	result, err := f.Primary.Upload(ctx, reservationNumber, category, originalName, mimeType, data)
	if err == nil {
		return result, nil
	}
	if err == ErrUnsupportedMimeType || strings.Contains(err.Error(), "mime type") {
		return f.Fallback.Upload(ctx, reservationNumber, category, originalName, mimeType, data)
	}
	return nil, err
}

func generateFileName(originalName string) string {
	ext := filepath.Ext(originalName)
	return uuid.NewString() + ext
}
