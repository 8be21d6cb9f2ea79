// Package crawl implements paginated discovery of document links from a
// listing site, with per-domain rate limiting and fetch retries.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/readingroom"
	"github.com/fwojciec/readingroom/bloom"
)

var _ readingroom.ListingSource = (*Crawler)(nil)

const (
	// dedupExpectedLinks sizes the bloom filter used to skip links already
	// seen on earlier pages.
	dedupExpectedLinks = 1_000_000

	dedupFalsePositiveRate = 0.001
)

// Crawler walks a paginated listing and collects document links in page
// order. It stops at the first page without a next-page marker, or early
// when a page cannot be fetched after retries, returning the links
// discovered so far.
type Crawler struct {
	Pages  readingroom.PageFetcher
	Parser readingroom.ListingParser

	// ListingURL is the first page of the listing. Subsequent pages are
	// requested by appending a page query parameter.
	ListingURL string

	// Limiter, if set, is consulted before every page request.
	Limiter readingroom.DomainLimiter

	// RetryDelays overrides the default fetch retry backoff when non-nil.
	// An empty non-nil slice disables retries.
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// Discover fetches listing pages starting at page 0 and returns the
// document links found, deduplicated by URL across pages. A page that
// fails to fetch or parse ends discovery; links from earlier pages are
// still returned.
func (c *Crawler) Discover(ctx context.Context) ([]readingroom.DocumentLink, error) {
	base, err := url.Parse(c.ListingURL)
	if err != nil {
		return nil, readingroom.Errorf(readingroom.EINVALID, "invalid listing url %q: %v", c.ListingURL, err)
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	seen := bloom.NewFilter(dedupExpectedLinks, dedupFalsePositiveRate)
	var links []readingroom.DocumentLink

	for page := 0; ; page++ {
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx, base.Host); err != nil {
				return links, err
			}
		}

		pageURL := c.pageURL(page)
		html, err := FetchWithRetryDelays(ctx, pageURL, c.Pages.Fetch, func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		}, delays)
		if err != nil {
			if ctx.Err() != nil {
				return links, ctx.Err()
			}
			logger.Warn("listing page fetch failed, stopping discovery", "url", pageURL, "page", page, "error", err)
			return links, nil
		}

		parsed, err := c.Parser.ParseListing(html, pageURL)
		if err != nil {
			logger.Warn("listing page parse failed, stopping discovery", "url", pageURL, "page", page, "error", err)
			return links, nil
		}

		for _, link := range parsed.Links {
			if seen.TestOrAdd(link.URL) {
				continue
			}
			links = append(links, link)
		}

		logger.Info("listing page crawled", "page", page, "links", len(parsed.Links), "total", len(links))

		if !parsed.HasNext {
			return links, nil
		}
	}
}

// pageURL returns the URL for the given zero-based listing page.
func (c *Crawler) pageURL(page int) string {
	sep := "?"
	if strings.Contains(c.ListingURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%spage=%d", c.ListingURL, sep, page)
}
