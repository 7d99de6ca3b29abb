package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/clip"
	"github.com/fwojciec/webclip/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Clips     webclip.ClipService
	Clipper   *clip.Clipper
	Fetcher   webclip.Fetcher
	Extractor webclip.Extractor
	Clipboard webclip.Clipboard
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Vault   string `help:"Root directory of the note vault" default:"." type:"path"`
	DB      string `help:"Clip history database path (overrides WEBCLIP_DB)"`
	Verbose bool   `short:"v" help:"Log pipeline operations to stderr"`

	Clip    ClipCmd    `cmd:"" help:"Clip a web page into the vault"`
	Preview PreviewCmd `cmd:"" help:"Show what a clip would extract without saving"`
	History HistoryCmd `cmd:"" help:"List past clips"`
}

// ClipCmd is the "clip" subcommand.
type ClipCmd struct {
	URL         string        `arg:"" optional:"" help:"Page URL (read from clipboard when omitted)"`
	ReadingRoot string        `default:"0 Reading" help:"Folder under the vault for clipped notes"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent asset download limit"`
	Timeout     time.Duration `default:"10s" help:"Per-request HTTP timeout"`
	Extractor   string        `default:"readability" enum:"readability,trafilatura" help:"Content extraction engine"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URL       string `arg:"" help:"Page URL"`
	Extractor string `default:"readability" enum:"readability,trafilatura" help:"Content extraction engine"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Only show clips of this source URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of clips to show"`
}
