package mock

import (
	"context"

	"github.com/fwojciec/webclip"
)

var _ webclip.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webclip.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*webclip.Page, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*webclip.Page, error) {
	return f.FetchFn(ctx, url)
}
