// Package goquery provides DOM-scanning helpers shared by the content
// extractors: asset reference discovery and title fallback.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webclip"
)

// ScanAssetRefs returns the relative media references found in the
// HTML fragment, in document order. Duplicates are kept; absolute
// URLs, protocol-relative URLs, data URIs and fragments are not asset
// references.
func ScanAssetRefs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webclip.Errorf(webclip.EINVALID, "failed to parse HTML: %v", err)
	}

	var refs []string
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, exists := sel.Attr("src")
		if !exists {
			return
		}
		if ref, ok := webclip.AssetRef(src); ok {
			refs = append(refs, ref)
		}
	})

	return refs, nil
}

// FirstHeading returns the text of the first h1, h2 or h3 element in
// the HTML, or an empty string if none exists. Lower heading levels
// only apply when no higher level is present anywhere in the document.
func FirstHeading(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, tag := range []string{"h1", "h2", "h3"} {
		if text := strings.TrimSpace(doc.Find(tag).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
