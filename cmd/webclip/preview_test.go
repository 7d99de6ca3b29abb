package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/webclip"
	main "github.com/fwojciec/webclip/cmd/webclip"
	"github.com/fwojciec/webclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints title and asset URLs", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (*webclip.Page, error) {
					return &webclip.Page{URL: url, Hostname: "example.com", StatusCode: 200, Body: []byte("<html/>")}, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ *webclip.Page) (*webclip.Article, error) {
					return &webclip.Article{
						Title:       "A Post",
						ContentHTML: "<p>hi</p>",
						AssetRefs:   []string{"images/chart.png", "images/photo.jpg"},
					}, nil
				},
			},
		}

		cmd := &main.PreviewCmd{URL: "https://example.com/post"}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "Title: A Post")
		assert.Contains(t, out, "Assets: 2")
		assert.Contains(t, out, "https://example.com/images/chart.png")
	})

	t.Run("reports non-2xx status", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (*webclip.Page, error) {
					return &webclip.Page{URL: url, Hostname: "example.com", StatusCode: 404}, nil
				},
			},
		}

		cmd := &main.PreviewCmd{URL: "https://example.com/missing"}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "HTTP 404")
	})
}
