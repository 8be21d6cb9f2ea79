package main

import (
	"context"
	"io"

	"github.com/fwojciec/readingroom"
	"github.com/fwojciec/readingroom/ingest"
	"github.com/fwojciec/readingroom/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents readingroom.DocumentService
	Tags      readingroom.TagService
	Pipeline  *ingest.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline activity to stderr"`

	Ingest IngestCmd `cmd:"" help:"Crawl the listing and download new documents"`
	Search SearchCmd `cmd:"" help:"Search indexed documents"`
	Tag    TagCmd    `cmd:"" help:"Add a tag to a document"`
	Tags   TagsCmd   `cmd:"" help:"List tags with document counts"`
	Export ExportCmd `cmd:"" help:"Stream a stored document binary"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	URL        string  `arg:"" help:"Listing URL to crawl"`
	Output     string  `short:"o" default:"${output_default}" help:"Directory for downloaded files"`
	MaxWorkers int     `short:"w" default:"5" help:"Concurrent download limit"`
	Rate       float64 `default:"1.0" help:"Requests per second per domain during crawling"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Text      string `short:"t" help:"Full-text query (prefix match per word)"`
	StartDate string `name:"start-date" help:"Earliest download date (YYYY-MM-DD)"`
	EndDate   string `name:"end-date" help:"Latest download date (YYYY-MM-DD)"`
	MinSize   string `name:"min-size" help:"Minimum file size in bytes"`
	MaxSize   string `name:"max-size" help:"Maximum file size in bytes"`
	Tag       string `help:"Only documents carrying this tag"`
}

// TagCmd is the "tag" subcommand.
type TagCmd struct {
	ID  int64  `arg:"" help:"Document ID"`
	Tag string `arg:"" help:"Tag to add"`
}

// TagsCmd is the "tags" subcommand.
type TagsCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Path string `arg:"" help:"Stored file path of the document"`
	Dest string `arg:"" optional:"" help:"Destination file (stdout when omitted)"`
}
