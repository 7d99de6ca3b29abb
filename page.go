package webclip

// Page is the raw result of fetching a URL. The status code is carried
// as data rather than an error so callers can decide their own retry
// and failure policy.
type Page struct {
	URL        string
	Hostname   string
	StatusCode int
	Body       []byte
}

// Text returns the body as a string.
func (p *Page) Text() string {
	return string(p.Body)
}

// OK reports whether the response status is in the 2xx range.
func (p *Page) OK() bool {
	return p.StatusCode >= 200 && p.StatusCode < 300
}
