// Package trafilatura wraps go-trafilatura as an alternative content
// extractor for pages where readability analysis struggles.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webclip.Extractor at compile time.
var _ webclip.Extractor = (*Extractor)(nil)

// Extractor extracts the main content of a page using go-trafilatura.
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

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeImages:  true,
	}

	result, err := trafilatura.Extract(strings.NewReader(page.Text()), opts)
	if err != nil {
		return nil, webclip.Errorf(webclip.ENOREADABLE, "no readable content in %s: %v", page.URL, err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(result.ContentText) == "" {
		return nil, webclip.Errorf(webclip.ENOREADABLE, "no readable content in %s", page.URL)
	}

	refs, err := goquery.ScanAssetRefs(contentHTML)
	if err != nil {
		return nil, err
	}

	return &webclip.Article{
		Title:       fallbackTitle(result.Metadata.Title, page),
		ContentHTML: contentHTML,
		AssetRefs:   refs,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

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
