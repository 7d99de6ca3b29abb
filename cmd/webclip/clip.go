package main

import (
	"fmt"

	"github.com/fwojciec/webclip"
)

// Run executes the clip command.
func (c *ClipCmd) Run(deps *Dependencies) error {
	url := c.URL
	if url == "" {
		text, err := deps.Clipboard.ReadText()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: no URL argument and clipboard read failed: %v\n", err)
			return err
		}
		url = text
	}

	clip, err := deps.Clipper.Clip(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %q to %s\n", clip.Title, clip.NotePath)
	if clip.AssetsSaved > 0 || clip.AssetsSkipped > 0 {
		fmt.Fprintf(deps.Stdout, "  %d assets saved, %d skipped\n", clip.AssetsSaved, clip.AssetsSkipped)
	}
	return nil
}
