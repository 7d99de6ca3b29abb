package webclip

// Article holds the readable content extracted from a fetched page.
type Article struct {
	// Title is never empty; extractors fall back to the first heading,
	// then the hostname, then "Untitled".
	Title string

	// ContentHTML is the primary content region as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// AssetRefs are media references found in the content, as paths
	// relative to the page's origin, in discovery order. Duplicates
	// are kept.
	AssetRefs []string
}

// Extractor isolates the primary article content of a fetched page.
type Extractor interface {
	// Extract identifies the readable content region of the page,
	// derives a title, and enumerates relative media references.
	// Returns an ENOREADABLE error when no content region exists.
	Extract(page *Page) (*Article, error)
}
