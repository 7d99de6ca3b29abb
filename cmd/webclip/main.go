package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/clip"
	"github.com/fwojciec/webclip/fs"
	"github.com/fwojciec/webclip/htmltomarkdown"
	webcliphttp "github.com/fwojciec/webclip/http"
	"github.com/fwojciec/webclip/readability"
	webclipslog "github.com/fwojciec/webclip/slog"
	"github.com/fwojciec/webclip/sqlite"
	"github.com/fwojciec/webclip/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path for the clip history. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Clipboard used when the clip command gets no URL argument.
	// Defaults to reading a line from stdin.
	Clipboard webclip.Clipboard

	// Service for end-to-end testing.
	ClipService webclip.ClipService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		Clipboard: &stdinClipboard{r: os.Stdin},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Clipboard: m.Clipboard,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webclip"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webclip --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the history database
	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WEBCLIP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ClipService = sqlite.NewClipService(m.DB)
	deps.DB = m.DB
	deps.Clips = m.ClipService

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Wire command-specific dependencies based on command
	switch cmd {
	case "clip":
		cfg := webclip.DefaultConfig()
		cfg.ReadingRoot = cli.Clip.ReadingRoot
		cfg.Concurrency = cli.Clip.Concurrency
		cfg.FetchTimeout = cli.Clip.Timeout

		fetcher := webclipslog.NewLoggingFetcher(
			webcliphttp.NewFetcher(
				webcliphttp.WithTimeout(cfg.FetchTimeout),
				webcliphttp.WithUserAgent(cfg.UserAgent),
			),
			logger,
		)
		storage := webclipslog.NewLoggingStorage(fs.NewStorage(cli.Vault), logger)

		deps.Clipper = &clip.Clipper{
			Fetcher:   fetcher,
			Extractor: newExtractor(cli.Clip.Extractor),
			Converter: newConverter(),
			Storage:   storage,
			Notifier:  &writerNotifier{w: stderr},
			Clips:     m.ClipService,
			Config:    cfg,
		}
	case "preview":
		deps.Fetcher = webclipslog.NewLoggingFetcher(webcliphttp.NewFetcher(), logger)
		deps.Extractor = newExtractor(cli.Preview.Extractor)
	}

	return kongCtx.Run(deps)
}

func newExtractor(name string) webclip.Extractor {
	if name == "trafilatura" {
		return trafilatura.NewExtractor()
	}
	return readability.NewExtractor()
}

func newConverter() webclip.Converter {
	return htmltomarkdown.NewConverter()
}

func defaultDBPath() string {
	if path := os.Getenv("WEBCLIP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webclip.db"
	}
	dir := filepath.Join(home, ".webclip")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "webclip.db")
}

// writerNotifier surfaces pipeline notifications on a writer.
type writerNotifier struct {
	w io.Writer
}

func (n *writerNotifier) Notify(message string) {
	fmt.Fprintln(n.w, message)
}

// stdinClipboard reads the URL to clip as a single line of input.
type stdinClipboard struct {
	r io.Reader
}

func (c *stdinClipboard) ReadText() (string, error) {
	line, err := bufio.NewReader(c.r).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
