package main

import (
	"fmt"

	"github.com/fwojciec/webclip"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := webclip.ClipFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	clips, err := deps.Clips.FindClips(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webclip.ErrorMessage(err))
		return err
	}

	if len(clips) == 0 {
		fmt.Fprintln(deps.Stdout, "No clips recorded.")
		return nil
	}

	for _, clip := range clips {
		fmt.Fprintf(deps.Stdout, "%s  %-40q  %s\n",
			clip.ClippedAt.Local().Format("2006-01-02 15:04"), clip.Title, clip.SourceURL)
	}
	return nil
}
