// Package ingest orchestrates the acquisition pipeline: listing discovery,
// bounded-parallel document fetching, extraction, and indexing.
package ingest

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync/atomic"

	"github.com/fwojciec/readingroom"
	"github.com/fwojciec/readingroom/fs"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the fetch pool size when none is configured.
const DefaultWorkers = 5

// Pipeline drives one full acquisition run. Discovery runs to completion
// first; the discovered items are then fetched by a fixed-size worker pool.
type Pipeline struct {
	Listing   readingroom.ListingSource
	Downloads readingroom.Downloader
	Extractor readingroom.TextExtractor
	Documents readingroom.DocumentService

	// Limiter, if set, is consulted before every download so the fetch
	// workers share the crawl's per-domain budget.
	Limiter readingroom.DomainLimiter

	// OutputDir receives the downloaded binaries. Created if absent.
	OutputDir string

	// Workers bounds concurrent fetches. Zero or negative means
	// DefaultWorkers.
	Workers int

	// Progress, if set, receives transfer progress events.
	Progress readingroom.TransferProgressFunc

	Logger *slog.Logger
}

// Result aggregates per-outcome counts for one run.
type Result struct {
	RunID      string
	Discovered int
	Indexed    int
	Skipped    int
	Failed     int
}

// Run executes the pipeline and returns aggregate counts. Per-item failures
// are logged and counted, never fatal; Run errors only when discovery
// cannot start at all.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.New().String()
	logger = logger.With("run", runID)

	if err := fs.EnsureDir(p.OutputDir); err != nil {
		return nil, err
	}

	links, err := p.Listing.Discover(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("discovery complete", "links", len(links))

	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var indexed, skipped, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, link := range links {
		g.Go(func() error {
			outcome := p.fetch(gctx, link, logger)
			switch outcome {
			case readingroom.OutcomeIndexed:
				indexed.Add(1)
			case readingroom.OutcomeSkippedDuplicate:
				skipped.Add(1)
			default:
				failed.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:      runID,
		Discovered: len(links),
		Indexed:    int(indexed.Load()),
		Skipped:    int(skipped.Load()),
		Failed:     int(failed.Load()),
	}
	logger.Info("run complete",
		"discovered", result.Discovered,
		"indexed", result.Indexed,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

// fetch processes one discovered item and classifies the outcome. It never
// leaves a partial document row; a partial file on disk is tolerated.
func (p *Pipeline) fetch(ctx context.Context, link readingroom.DocumentLink, logger *slog.Logger) readingroom.FetchOutcome {
	if _, err := p.Documents.FindDocumentBySourceURL(ctx, link.URL); err == nil {
		logger.Info("skipping, already indexed", "url", link.URL)
		return readingroom.OutcomeSkippedDuplicate
	} else if readingroom.ErrorCode(err) != readingroom.ENOTFOUND {
		logger.Warn("duplicate pre-check failed, attempting fetch anyway", "url", link.URL, "error", err)
	}

	if p.Limiter != nil {
		if u, err := url.Parse(link.URL); err == nil {
			if err := p.Limiter.Wait(ctx, u.Host); err != nil {
				logger.Warn("rate limit wait interrupted", "url", link.URL, "error", err)
				return readingroom.OutcomeFailedTransfer
			}
		}
	}

	dest := fs.DestPath(p.OutputDir, link.URL)
	declared, err := p.Downloads.Download(ctx, link.URL, dest, p.Progress)
	if err != nil {
		var statusErr *readingroom.TransferStatusError
		if errors.As(err, &statusErr) {
			logger.Warn("transfer rejected", "url", link.URL, "status", statusErr.StatusCode)
			return readingroom.OutcomeFailedTransferStatus
		}
		logger.Warn("transfer failed", "url", link.URL, "error", err)
		return readingroom.OutcomeFailedTransfer
	}

	content, err := p.Extractor.ExtractText(ctx, dest)
	if err != nil {
		logger.Warn("text extraction failed, indexing without content", "path", dest, "error", err)
		content = ""
	}

	doc := &readingroom.Document{
		Title:     link.Title,
		SourceURL: link.URL,
		LocalPath: dest,
		SizeBytes: declared,
		Content:   content,
	}
	if err := p.Documents.IndexDocument(ctx, doc); err != nil {
		// A concurrent worker won the race on this source URL.
		if readingroom.ErrorCode(err) == readingroom.ECONFLICT {
			logger.Info("skipping, indexed concurrently", "url", link.URL)
			return readingroom.OutcomeSkippedDuplicate
		}
		logger.Warn("indexing failed", "url", link.URL, "error", err)
		return readingroom.OutcomeFailedTransfer
	}

	logger.Info("indexed", "url", link.URL, "id", doc.ID, "bytes", declared)
	return readingroom.OutcomeIndexed
}
