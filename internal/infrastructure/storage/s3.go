package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage uploads media to Amazon S3 (or compatible APIs).
type S3Storage struct {
	client    *s3.Client
	uploader  *manager.Uploader
	bucket    string
	keyPrefix string
	baseURL   string
}

// NewS3Storage wraps an S3 client for the given bucket. baseURL is the public
// URL files are served from (CDN or bucket endpoint); keyPrefix may be empty.
func NewS3Storage(client *s3.Client, bucket, keyPrefix, baseURL string) *S3Storage {
	return &S3Storage{
		client:    client,
		uploader:  manager.NewUploader(client),
		bucket:    bucket,
		keyPrefix: strings.Trim(keyPrefix, "/"),
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *S3Storage) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	key := s.key(folder, filename)

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}

func (s *S3Storage) Remove(ctx context.Context, publicPath string) error {
	key := strings.TrimPrefix(publicPath, s.baseURL+"/")
	if key == "" || key == publicPath {
		return fmt.Errorf("upload path %q is outside bucket base %q", publicPath, s.baseURL)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) key(folder, filename string) string {
	parts := make([]string, 0, 3)
	if s.keyPrefix != "" {
		parts = append(parts, s.keyPrefix)
	}
	parts = append(parts, folder, filename)
	return strings.Join(parts, "/")
}
