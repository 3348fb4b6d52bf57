// Package storage puts uploaded files into an S3-compatible bucket and
// returns the public URL they are served from.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"scholarportal/internal/config"
)

// DefaultFolder is used when the caller does not name one.
const DefaultFolder = "uploads"

var folderPattern = regexp.MustCompile(`[^a-z0-9_-]+`)

// objectPutter is the part of manager.Uploader the S3Uploader needs.
type objectPutter interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3Uploader stores files in a bucket under random names.
type S3Uploader struct {
	putter    objectPutter
	bucket    string
	publicURL string
	logger    *slog.Logger
	newID     func() string
}

// NewS3Uploader builds an uploader for cfg. Endpoint is set for non-AWS
// providers (R2, MinIO, Supabase storage) and switches to path-style URLs.
func NewS3Uploader(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*S3Uploader, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("storage not configured: STORAGE_BUCKET and STORAGE_PUBLIC_URL are required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Uploader(manager.NewUploader(client), cfg.Bucket, cfg.PublicURL, logger), nil
}

func newS3Uploader(putter objectPutter, bucket, publicURL string, logger *slog.Logger) *S3Uploader {
	return &S3Uploader{
		putter:    putter,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// Upload stores body under folder with a random name that keeps the
// original extension, and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	key := ObjectKey(folder, filename, u.newID())

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := u.putter.Upload(ctx, input); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	u.logger.Info("file uploaded", "key", key, "content_type", contentType)
	return u.publicURL + "/" + key, nil
}

// ObjectKey builds "<folder>/<id><ext>". The folder is reduced to a safe
// lowercase slug; the extension is taken from filename.
func ObjectKey(folder, filename, id string) string {
	folder = folderPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(folder)), "-")
	folder = strings.Trim(folder, "-")
	if folder == "" {
		folder = DefaultFolder
	}
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/"))))
	return folder + "/" + id + ext
}
