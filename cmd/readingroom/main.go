package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readingroom"
	"github.com/fwojciec/readingroom/crawl"
	"github.com/fwojciec/readingroom/fs"
	"github.com/fwojciec/readingroom/goquery"
	rrhttp "github.com/fwojciec/readingroom/http"
	"github.com/fwojciec/readingroom/ingest"
	"github.com/fwojciec/readingroom/pdf"
	rrslog "github.com/fwojciec/readingroom/slog"
	"github.com/fwojciec/readingroom/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService readingroom.DocumentService
	TagService      readingroom.TagService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readingroom"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"output_default": fs.DefaultDirName},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'readingroom --help' to see available commands")
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

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set READINGROOM_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.DocumentService = rrslog.NewLoggingDocumentService(sqlite.NewDocumentService(m.DB), logger)
	m.TagService = sqlite.NewTagService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Tags = m.TagService

	if cmd == "ingest" {
		fetcher := rrhttp.NewFetcher()
		defer fetcher.Close()

		// Crawling and downloading share one per-domain budget.
		limiter := crawl.NewDomainLimiter(cli.Ingest.Rate)

		crawler := &crawl.Crawler{
			Pages:      fetcher,
			Parser:     goquery.NewParser(),
			ListingURL: cli.Ingest.URL,
			Limiter:    limiter,
			Logger:     logger,
		}

		deps.Pipeline = &ingest.Pipeline{
			Listing:   rrslog.NewLoggingListingSource(crawler, logger),
			Downloads: rrhttp.NewDownloader(),
			Extractor: pdf.NewExtractor(),
			Documents: m.DocumentService,
			Limiter:   limiter,
			OutputDir: cli.Ingest.Output,
			Workers:   cli.Ingest.MaxWorkers,
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("READINGROOM_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "readingroom.db"
	}
	dir := filepath.Join(home, ".readingroom")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "readingroom.db")
}
