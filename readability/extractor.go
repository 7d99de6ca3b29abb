// Package readability wraps go-readability to isolate the primary
// article content of a fetched page.
package readability

import (
	"strings"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webclip.Extractor at compile time.
var _ webclip.Extractor = (*Extractor)(nil)

// Extractor extracts the readable article subtree from a page using
// heuristic readability analysis.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract isolates the primary content region, derives a non-empty
// title, and enumerates relative asset references in discovery order.
func (e *Extractor) Extract(page *webclip.Page) (*webclip.Article, error) {
	if page == nil || len(page.Body) == 0 {
		return nil, webclip.Errorf(webclip.EINVALID, "empty page input")
	}

	article, err := readability.FromReader(strings.NewReader(page.Text()), nil)
	if err != nil {
		return nil, webclip.Errorf(webclip.ENOREADABLE, "no readable content in %s: %v", page.URL, err)
	}

	if strings.TrimSpace(article.TextContent) == "" {
		return nil, webclip.Errorf(webclip.ENOREADABLE, "no readable content in %s", page.URL)
	}

	refs, err := goquery.ScanAssetRefs(article.Content)
	if err != nil {
		return nil, err
	}

	return &webclip.Article{
		Title:       fallbackTitle(article.Title, page),
		ContentHTML: article.Content,
		AssetRefs:   refs,
	}, nil
}

// fallbackTitle resolves the title fallback chain: document title,
// first heading in the original document, hostname, "Untitled".
// The result is never empty since a title participates in a storage
// path.
func fallbackTitle(title string, page *webclip.Page) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	if t := goquery.FirstHeading(page.Text()); t != "" {
		return t
	}
	if page.Hostname != "" {
		return page.Hostname
	}
	return "Untitled"
}
