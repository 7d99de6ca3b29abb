package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/webclip"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webclip.ClipService = (*ClipService)(nil)

// ClipService implements webclip.ClipService using SQLite.
type ClipService struct {
	db *DB
}

// NewClipService creates a new ClipService.
func NewClipService(db *DB) *ClipService {
	return &ClipService{db: db}
}

// CreateClip records a completed clip.
func (s *ClipService) CreateClip(ctx context.Context, clip *webclip.Clip) error {
	if err := clip.Validate(); err != nil {
		return err
	}

	if clip.ID == "" {
		clip.ID = uuid.New().String()
	}
	if clip.ClippedAt.IsZero() {
		clip.ClippedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clips (id, source_url, title, note_path, content_hash, assets_saved, assets_skipped, clipped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, clip.ID, clip.SourceURL, clip.Title, clip.NotePath, clip.ContentHash,
		clip.AssetsSaved, clip.AssetsSkipped, clip.ClippedAt.Format(time.RFC3339))

	return err
}

// FindClipByID retrieves a clip by ID.
func (s *ClipService) FindClipByID(ctx context.Context, id string) (*webclip.Clip, error) {
	var clip webclip.Clip
	var clippedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, note_path, content_hash, assets_saved, assets_skipped, clipped_at
		FROM clips
		WHERE id = ?
	`, id).Scan(&clip.ID, &clip.SourceURL, &clip.Title, &clip.NotePath,
		&clip.ContentHash, &clip.AssetsSaved, &clip.AssetsSkipped, &clippedAt)

	if err == sql.ErrNoRows {
		return nil, webclip.Errorf(webclip.ENOTFOUND, "clip not found")
	}
	if err != nil {
		return nil, err
	}

	var parseErr error
	clip.ClippedAt, parseErr = time.Parse(time.RFC3339, clippedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse clipped_at: %w", parseErr)
	}

	return &clip, nil
}

// FindClips retrieves clips matching the filter, most recent first.
func (s *ClipService) FindClips(ctx context.Context, filter webclip.ClipFilter) ([]*webclip.Clip, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, note_path, content_hash, assets_saved, assets_skipped, clipped_at FROM clips WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY clipped_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clips []*webclip.Clip
	for rows.Next() {
		var clip webclip.Clip
		var clippedAt string

		if err := rows.Scan(&clip.ID, &clip.SourceURL, &clip.Title, &clip.NotePath,
			&clip.ContentHash, &clip.AssetsSaved, &clip.AssetsSkipped, &clippedAt); err != nil {
			return nil, err
		}

		clip.ClippedAt, err = time.Parse(time.RFC3339, clippedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse clipped_at: %w", err)
		}

		clips = append(clips, &clip)
	}

	return clips, rows.Err()
}
