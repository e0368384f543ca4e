// Package storage contains upload backends implementing ports.FileStorage.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage writes uploads to a directory on disk and serves them under a
// public base path (e.g. /uploads).
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) *LocalStorage {
	return &LocalStorage{
		dir:     filepath.Clean(dir),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Save writes the file under dir/folder and returns its public path.
func (s *LocalStorage) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	target, err := s.diskPath(folder, filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return s.baseURL + "/" + folder + "/" + filename, nil
}

// Remove deletes a previously stored file given its public path. Missing
// files are not an error.
func (s *LocalStorage) Remove(ctx context.Context, publicPath string) error {
	if !strings.HasPrefix(publicPath, s.baseURL+"/") {
		return fmt.Errorf("malformed upload path %q", publicPath)
	}
	rel := strings.TrimPrefix(publicPath, s.baseURL+"/")
	parts := strings.SplitN(rel, "/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("malformed upload path %q", publicPath)
	}

	target, err := s.diskPath(parts[0], parts[1])
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// diskPath joins folder and filename under the upload dir, rejecting any
// segment that would escape it.
func (s *LocalStorage) diskPath(folder, filename string) (string, error) {
	cleaned := path.Clean(folder + "/" + filename)
	if strings.HasPrefix(cleaned, "..") || path.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid upload path %q", cleaned)
	}
	return filepath.Join(s.dir, filepath.FromSlash(cleaned)), nil
}
