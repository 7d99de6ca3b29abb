// Package clip orchestrates the clip pipeline: fetch, extract,
// convert, persist the note, then persist its assets concurrently.
package clip

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/webclip"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Clipper drives one clip invocation end to end.
type Clipper struct {
	Fetcher   webclip.Fetcher
	Extractor webclip.Extractor
	Converter webclip.Converter
	Storage   webclip.Storage
	Notifier  webclip.Notifier
	Clips     webclip.ClipService // optional history record
	Config    webclip.Config
}

// Clip fetches the page at rawURL and persists it as a linked note.
// The note write completes before any asset download starts, and Clip
// returns only after every asset task has settled. Page-level faults
// (fetch, extraction, conversion, note write) abort the clip with a
// single failure notification; per-asset faults are reported
// individually and skipped without affecting siblings or the note.
func (c *Clipper) Clip(ctx context.Context, rawURL string) (*webclip.Clip, error) {
	req := webclip.ClipRequest{SourceURL: rawURL}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}

	page, err := c.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		c.notifyf("Failed to clip %s: %v", rawURL, err)
		return nil, err
	}
	if !page.OK() {
		err := webclip.Errorf(webclip.EUNAVAILABLE, "HTTP %d for %s", page.StatusCode, rawURL)
		c.notifyf("Failed to clip %s: %v", rawURL, err)
		return nil, err
	}

	article, err := c.Extractor.Extract(page)
	if err != nil {
		c.notifyf("Failed to clip %s: %v", rawURL, err)
		return nil, err
	}

	markdown, err := c.Converter.Convert(article.ContentHTML)
	if err != nil {
		c.notifyf("Failed to clip %s: %v", rawURL, err)
		return nil, err
	}

	layout := webclip.NewLayout(c.Config.ReadingRoot, article.Title)
	clippedAt := time.Now().UTC()

	if err := EnsurePath(ctx, c.Storage, layout.NoteDir); err != nil {
		c.notifyf("Failed to clip %s: %v", rawURL, err)
		return nil, err
	}
	note := FormatNote(page.URL, article.Title, clippedAt, markdown)
	if err := c.Storage.CreateTextFile(ctx, layout.NotePath, note); err != nil {
		c.notifyf("Failed to clip %s: %v", rawURL, err)
		return nil, err
	}

	saved, skipped := c.saveAssets(ctx, page.Hostname, layout, article.AssetRefs)

	clip := &webclip.Clip{
		ID:            uuid.New().String(),
		SourceURL:     page.URL,
		Title:         article.Title,
		NotePath:      layout.NotePath,
		ContentHash:   ContentHash(markdown),
		AssetsSaved:   saved,
		AssetsSkipped: skipped,
		ClippedAt:     clippedAt,
	}

	if c.Clips != nil {
		if err := c.Clips.CreateClip(ctx, clip); err != nil {
			c.notifyf("Failed to record clip history: %v", err)
		}
	}

	c.notifyf("Clipped %q", article.Title)
	return clip, nil
}

// saveAssets downloads and stores every asset reference. Assets are
// independent units of work: each gets its own retry budget, and a
// failed asset never aborts its siblings. saveAssets returns only
// after all tasks have settled.
func (c *Clipper) saveAssets(ctx context.Context, hostname string, layout webclip.Layout, refs []string) (saved, skipped int) {
	if len(refs) == 0 {
		return 0, 0
	}

	// Token bucket spacing downloads as a courtesy to the origin
	// server, independent of the per-asset failure cooldown.
	limiter := rate.NewLimiter(politenessRate(c.Config.PolitenessDelay), 1)

	var savedCount, skippedCount atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Config.Concurrency)

	for _, ref := range refs {
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				skippedCount.Add(1)
				return nil
			}
			if err := c.saveAsset(gctx, hostname, layout, ref); err != nil {
				skippedCount.Add(1)
				c.notifyf("Failed to fetch asset %s: %v", webclip.AssetURL(hostname, ref), err)
				return nil
			}
			savedCount.Add(1)
			return nil
		})
	}

	// Tasks never return errors; Wait gates overall completion.
	_ = g.Wait()

	return int(savedCount.Load()), int(skippedCount.Load())
}

func (c *Clipper) saveAsset(ctx context.Context, hostname string, layout webclip.Layout, ref string) error {
	url := webclip.AssetURL(hostname, ref)

	page, err := DownloadWithRetry(ctx, c.Fetcher, url, c.Config.RetryAttempts, c.Config.RetryCooldown)
	if err != nil {
		return err
	}

	assetPath := layout.AssetPath(ref)
	if err := EnsurePath(ctx, c.Storage, parentDir(assetPath)); err != nil {
		return err
	}
	return c.Storage.CreateBinaryFile(ctx, assetPath, page.Body)
}

// politenessRate converts the configured inter-download delay into a
// token bucket rate. Zero delay means no spacing.
func politenessRate(d time.Duration) rate.Limit {
	if d <= 0 {
		return rate.Inf
	}
	return rate.Every(d)
}

func (c *Clipper) notifyf(format string, args ...any) {
	if c.Notifier != nil {
		c.Notifier.Notify(fmt.Sprintf(format, args...))
	}
}
