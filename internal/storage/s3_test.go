package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarportal/internal/config"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	f.input = input
	data, _ := io.ReadAll(input.Body)
	f.body = string(data)
	if f.err != nil {
		return nil, f.err
	}
	return &manager.UploadOutput{Key: input.Key}, nil
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		filename string
		want     string
	}{
		{"keeps extension", "ijazat", "Ijaza Scan.PDF", "ijazat/id-1.pdf"},
		{"default folder", "", "cover.jpg", "uploads/id-1.jpg"},
		{"slugged folder", " Resource Covers/../", "a.png", "resource-covers/id-1.png"},
		{"no extension", "covers", "README", "covers/id-1"},
		{"windows path", "covers", `C:\tmp\photo.webp`, "covers/id-1.webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectKey(tt.folder, tt.filename, "id-1"))
		})
	}
}

func TestS3UploaderUpload(t *testing.T) {
	putter := &fakePutter{}
	uploader := newS3Uploader(putter, "portal", "https://cdn.example.com/", slog.Default())
	uploader.newID = func() string { return "abc" }

	url, err := uploader.Upload(context.Background(), "ijazat", "scan.pdf", "application/pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/ijazat/abc.pdf", url)
	assert.Equal(t, "portal", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "ijazat/abc.pdf", aws.ToString(putter.input.Key))
	assert.Equal(t, "application/pdf", aws.ToString(putter.input.ContentType))
	assert.Equal(t, "%PDF", putter.body)
}

func TestS3UploaderUploadError(t *testing.T) {
	putter := &fakePutter{err: errors.New("access denied")}
	uploader := newS3Uploader(putter, "portal", "https://cdn.example.com", slog.Default())

	_, err := uploader.Upload(context.Background(), "", "a.jpg", "", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Nil(t, putter.input.ContentType)
}

func TestNewS3UploaderRequiresBucket(t *testing.T) {
	_, err := NewS3Uploader(context.Background(), config.StorageConfig{Region: "auto"}, slog.Default())
	assert.Error(t, err)
}
