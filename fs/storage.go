// Package fs provides a filesystem-backed implementation of
// webclip.Storage rooted at a vault directory.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/webclip"
)

// Ensure Storage implements webclip.Storage at compile time.
var _ webclip.Storage = (*Storage)(nil)

// Storage stores notes and media under a base directory. Storage paths
// are slash-separated and relative to the base directory.
type Storage struct {
	baseDir string
}

// NewStorage creates a new Storage rooted at baseDir. The base
// directory itself must already exist.
func NewStorage(baseDir string) *Storage {
	return &Storage{baseDir: baseDir}
}

func (s *Storage) abs(path string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(path))
}

// FolderExists reports whether a folder exists at path. A regular file
// at the path does not count as a folder.
func (s *Storage) FolderExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(s.abs(path))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// CreateFolder creates a single folder. The parent must already exist.
// Creating a folder that already exists is a no-op; a regular file in
// the way is a conflict.
func (s *Storage) CreateFolder(ctx context.Context, path string) error {
	err := os.Mkdir(s.abs(path), 0755)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		info, statErr := os.Stat(s.abs(path))
		if statErr == nil && info.IsDir() {
			return nil
		}
		return webclip.Errorf(webclip.ECONFLICT, "%q exists and is not a folder", path)
	}
	return err
}

// CreateTextFile writes a text file, replacing any existing file.
func (s *Storage) CreateTextFile(ctx context.Context, path string, content string) error {
	return os.WriteFile(s.abs(path), []byte(content), 0644)
}

// CreateBinaryFile writes a binary file, replacing any existing file.
func (s *Storage) CreateBinaryFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(s.abs(path), data, 0644)
}
