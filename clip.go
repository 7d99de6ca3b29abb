package webclip

import (
	"context"
	"net/url"
	"time"
)

// ClipRequest is a single user-initiated request to clip a URL.
type ClipRequest struct {
	SourceURL string `json:"sourceUrl"`
}

// Validate returns an error if the request contains invalid fields.
func (r ClipRequest) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	u, err := url.Parse(r.SourceURL)
	if err != nil || u.Host == "" {
		return Errorf(EINVALID, "invalid source URL %q", r.SourceURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "unsupported URL scheme %q", u.Scheme)
	}
	return nil
}

// Clip represents one completed clip of a web page.
type Clip struct {
	ID            string    `json:"id"`
	SourceURL     string    `json:"sourceUrl"`
	Title         string    `json:"title"`
	NotePath      string    `json:"notePath"`
	ContentHash   string    `json:"contentHash"`
	AssetsSaved   int       `json:"assetsSaved"`
	AssetsSkipped int       `json:"assetsSkipped"`
	ClippedAt     time.Time `json:"clippedAt"`
}

// Validate returns an error if the clip contains invalid fields.
func (c *Clip) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "clip source URL required")
	}
	if c.Title == "" {
		return Errorf(EINVALID, "clip title required")
	}
	return nil
}

// ClipService represents a service for managing the clip history.
// The history is a record, not an index: it never deduplicates and
// never blocks re-clipping a URL.
type ClipService interface {
	// CreateClip records a completed clip.
	CreateClip(ctx context.Context, clip *Clip) error

	// FindClipByID retrieves a clip by ID.
	// Returns ENOTFOUND if the clip does not exist.
	FindClipByID(ctx context.Context, id string) (*Clip, error)

	// FindClips retrieves clips matching the filter, most recent first.
	FindClips(ctx context.Context, filter ClipFilter) ([]*Clip, error)
}

// ClipFilter represents a filter for FindClips.
type ClipFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
