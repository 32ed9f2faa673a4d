package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type localUploader struct {
	baseDir string
	baseURL string
}

// NewLocalUploader stores files on the local filesystem under baseDir and
// serves them from baseURL. Meant for development setups without R2
// credentials.
func NewLocalUploader(baseDir, baseURL string) (FileUploader, error) {
	if baseDir == "" {
		return nil, errors.New("local uploader: base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("local uploader: failed to create base directory %s: %w", baseDir, err)
	}
	return &localUploader{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (u *localUploader) Upload(_ context.Context, key string, _ string, reader io.Reader) (*UploadResult, error) {
	path := filepath.Join(u.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("local uploader: failed to create directory for key %s: %w", key, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("local uploader: failed to create file for key %s: %w", key, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return nil, fmt.Errorf("local uploader: failed to write file for key %s: %w", key, err)
	}

	return &UploadResult{
		Key:      key,
		Location: u.GetPublicURL(key),
	}, nil
}

func (u *localUploader) Delete(_ context.Context, key string) error {
	path := filepath.Join(u.baseDir, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("local uploader: failed to delete file for key %s: %w", key, err)
	}
	return nil
}

func (u *localUploader) GetPublicURL(key string) string {
	if key == "" {
		return ""
	}
	return u.baseURL + "/" + strings.TrimPrefix(key, "/")
}
