package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements webclip.Extractor at compile time.
var _ webclip.Extractor = (*trafilatura.Extractor)(nil)

func page(html string) *webclip.Page {
	return &webclip.Page{
		URL:        "https://example.com/post",
		Hostname:   "example.com",
		StatusCode: 200,
		Body:       []byte(html),
	}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Getting Started - My Blog</title>
<meta property="og:title" content="Getting Started Guide">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Getting Started</h1>
<p>This is the main content of the blog post, with enough prose for the extractor to work with.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		article, err := ext.Extract(page(html))

		require.NoError(t, err)
		assert.NotEmpty(t, article.Title)
		assert.Contains(t, article.ContentHTML, "main content of the blog post")
		assert.NotContains(t, article.ContentHTML, "Navigation here")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract(page(""))

		require.Error(t, err)
		assert.Equal(t, webclip.EINVALID, webclip.ErrorCode(err))
	})

	t.Run("fails when no content region", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract(page(`<!DOCTYPE html><html><head></head><body></body></html>`))

		require.Error(t, err)
		assert.Equal(t, webclip.ENOREADABLE, webclip.ErrorCode(err))
	})
}
