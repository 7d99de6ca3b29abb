package mock

import "github.com/fwojciec/webclip"

var _ webclip.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webclip.Extractor.
type Extractor struct {
	ExtractFn func(page *webclip.Page) (*webclip.Article, error)
}

func (e *Extractor) Extract(page *webclip.Page) (*webclip.Article, error) {
	return e.ExtractFn(page)
}
