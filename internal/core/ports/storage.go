package ports

import (
	"context"
	"io"
)

// FileStorage stores uploaded media under a logical folder and returns a
// stable public path. Input validation (MIME, size) happens before delegation;
// implementations only move bytes.
type FileStorage interface {
	Save(ctx context.Context, folder, filename string, r io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}
