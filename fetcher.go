package webclip

import "context"

// Fetcher retrieves raw content from URLs over HTTP.
// A single Fetch is one attempt; retry is a policy owned by callers.
type Fetcher interface {
	// Fetch performs one GET request and returns the response as a Page.
	// Non-2xx status codes are returned on the Page, not as errors;
	// transport failures are returned as errors.
	Fetch(ctx context.Context, url string) (*Page, error)
}
