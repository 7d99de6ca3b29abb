package readability_test

import (
	"testing"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(html string) *webclip.Page {
	return &webclip.Page{
		URL:        "https://example.com/post",
		Hostname:   "example.com",
		StatusCode: 200,
		Body:       []byte(html),
	}
}

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract(page(""))

	require.Error(t, err)
	assert.Equal(t, webclip.EINVALID, webclip.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>This is the main article content of the page, long enough to register.</p></article></body>
</html>`

	ext := readability.NewExtractor()
	article, err := ext.Extract(page(html))

	require.NoError(t, err)
	assert.Equal(t, "Page Title", article.Title)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	article, err := ext.Extract(page(html))

	require.NoError(t, err)
	assert.Contains(t, article.ContentHTML, "main article content")
	assert.NotContains(t, article.ContentHTML, "Home Nav Link")
	assert.NotContains(t, article.ContentHTML, "About Nav Link")
}

func TestExtractor_DiscoversAssetReferences(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>This is the main article content with several embedded media references in it.</p>
<img src="diagram.png" alt="diagram">
<p>More prose between the images to keep the extractor interested in the region.</p>
<img src="/media/photo.jpg" alt="photo">
<img src="https://cdn.example.com/external.png" alt="external">
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	article, err := ext.Extract(page(html))

	require.NoError(t, err)
	assert.Equal(t, []string{"diagram.png", "media/photo.jpg"}, article.AssetRefs)
}

func TestExtractor_TitleFallsBackToHeading(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head></head>
<body>
<article>
<h1>Heading Title</h1>
<p>This is the main article content that should be preserved in the output.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	article, err := ext.Extract(page(html))

	require.NoError(t, err)
	assert.Equal(t, "Heading Title", article.Title)
}

func TestExtractor_TitleFallsBackToHostname(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head></head>
<body>
<article>
<p>This is the main article content that should be preserved in the output, with no title or heading anywhere.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	article, err := ext.Extract(page(html))

	require.NoError(t, err)
	assert.Equal(t, "example.com", article.Title)
}

func TestExtractor_FailsWhenNoContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html><html><head><title>Empty</title></head><body></body></html>`

	ext := readability.NewExtractor()
	_, err := ext.Extract(page(html))

	require.Error(t, err)
	assert.Equal(t, webclip.ENOREADABLE, webclip.ErrorCode(err))
}
