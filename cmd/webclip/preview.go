package main

import (
	"fmt"

	"github.com/fwojciec/webclip"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	req := webclip.ClipRequest{SourceURL: c.URL}
	if err := req.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webclip.ErrorMessage(err))
		return err
	}

	page, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webclip.ErrorMessage(err))
		return err
	}
	if !page.OK() {
		err := webclip.Errorf(webclip.EUNAVAILABLE, "HTTP %d for %s", page.StatusCode, c.URL)
		fmt.Fprintf(deps.Stderr, "error: %s\n", webclip.ErrorMessage(err))
		return err
	}

	article, err := deps.Extractor.Extract(page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Title: %s\n", article.Title)
	fmt.Fprintf(deps.Stdout, "Assets: %d\n", len(article.AssetRefs))
	for _, ref := range article.AssetRefs {
		fmt.Fprintf(deps.Stdout, "  %s\n", webclip.AssetURL(page.Hostname, ref))
	}
	return nil
}
