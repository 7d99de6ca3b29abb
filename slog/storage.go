package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webclip"
)

// Ensure LoggingStorage implements webclip.Storage.
var _ webclip.Storage = (*LoggingStorage)(nil)

// LoggingStorage wraps a Storage with debug logging of every call.
type LoggingStorage struct {
	next   webclip.Storage
	logger *slog.Logger
}

// NewLoggingStorage creates a new LoggingStorage.
func NewLoggingStorage(next webclip.Storage, logger *slog.Logger) *LoggingStorage {
	return &LoggingStorage{next: next, logger: logger}
}

func (s *LoggingStorage) FolderExists(ctx context.Context, path string) (exists bool, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("storage folder-exists",
			"path", path,
			"exists", exists,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FolderExists(ctx, path)
}

func (s *LoggingStorage) CreateFolder(ctx context.Context, path string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("storage create-folder",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateFolder(ctx, path)
}

func (s *LoggingStorage) CreateTextFile(ctx context.Context, path string, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("storage create-text-file",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateTextFile(ctx, path, content)
}

func (s *LoggingStorage) CreateBinaryFile(ctx context.Context, path string, data []byte) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("storage create-binary-file",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateBinaryFile(ctx, path, data)
}
