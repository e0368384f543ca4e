package ports

import (
	"context"
	"io"
)

// UploadInput is a single file received from a multipart form.
type UploadInput struct {
	Filename string
	Size     int64
	Folder   string
	Open     func() (io.ReadCloser, error)
}

// UploadResult describes a stored file.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimetype"`
}

type UploadService interface {
	UploadImage(ctx context.Context, in UploadInput) (*UploadResult, error)
	UploadImages(ctx context.Context, ins []UploadInput) ([]UploadResult, error)
	RemoveFile(ctx context.Context, path string) error
}
