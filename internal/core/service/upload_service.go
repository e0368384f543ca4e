package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

// maxUploadSize is the hard cap on a single uploaded file (10 MiB).
const maxUploadSize = 10 << 20

const maxFilesPerBatch = 10

var ErrNoFile = errors.New("no file provided")
var ErrFileTooLarge = errors.New("file size exceeds 10MB limit")
var ErrUnsupportedMediaType = errors.New("invalid file type, only JPEG, PNG and WebP are allowed")
var ErrTooManyFiles = errors.New("too many files in one request")
var ErrUnknownFolder = errors.New("unknown upload folder")

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

var allowedFolders = map[string]struct{}{
	"projects": {},
	"pages":    {},
}

var whitespaceRe = regexp.MustCompile(`\s+`)

type uploadService struct {
	storage ports.FileStorage
	log     zerolog.Logger
}

// NewUploadService returns an UploadService enforcing the media input
// contract (allowed MIME types, 10 MiB cap) before delegating to storage.
func NewUploadService(storage ports.FileStorage, log zerolog.Logger) ports.UploadService {
	return &uploadService{storage: storage, log: log}
}

// UploadImage validates and stores one image. The MIME type is sniffed from
// file content, not trusted from the request.
func (s *uploadService) UploadImage(ctx context.Context, in ports.UploadInput) (*ports.UploadResult, error) {
	if in.Open == nil {
		return nil, ErrNoFile
	}
	if in.Size > maxUploadSize {
		return nil, ErrFileTooLarge
	}

	folder := in.Folder
	if folder == "" {
		folder = "projects"
	}
	if _, ok := allowedFolders[folder]; !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFolder, folder)
	}

	f, err := in.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	mimeType := http.DetectContentType(head)
	if _, ok := allowedImageTypes[mimeType]; !ok {
		return nil, ErrUnsupportedMediaType
	}

	filename := storedName(in.Filename)
	url, err := s.storage.Save(ctx, folder, filename, io.MultiReader(bytes.NewReader(head), f))
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	s.log.Info().Str("folder", folder).Str("filename", filename).Int64("size", in.Size).Msg("image uploaded")

	return &ports.UploadResult{
		URL:      url,
		Filename: filename,
		Size:     in.Size,
		MimeType: mimeType,
	}, nil
}

// UploadImages stores up to maxFilesPerBatch images. The batch fails on the
// first invalid file; previously stored files from a partially processed
// batch are kept, mirroring the original behaviour.
func (s *uploadService) UploadImages(ctx context.Context, ins []ports.UploadInput) ([]ports.UploadResult, error) {
	if len(ins) == 0 {
		return nil, ErrNoFile
	}
	if len(ins) > maxFilesPerBatch {
		return nil, ErrTooManyFiles
	}

	results := make([]ports.UploadResult, 0, len(ins))
	for _, in := range ins {
		res, err := s.UploadImage(ctx, in)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, nil
}

// RemoveFile deletes a previously stored file by its public path.
func (s *uploadService) RemoveFile(ctx context.Context, path string) error {
	if path == "" {
		return ErrNoFile
	}
	if err := s.storage.Remove(ctx, path); err != nil {
		return fmt.Errorf("remove file: %w", err)
	}
	s.log.Info().Str("path", path).Msg("file removed")
	return nil
}

// storedName builds a collision-resistant stored filename from the original:
// timestamp prefix, whitespace collapsed to dashes, path separators stripped.
func storedName(original string) string {
	base := filepath.Base(strings.TrimSpace(original))
	base = whitespaceRe.ReplaceAllString(base, "-")
	if base == "" || base == "." {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}
