package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readingroom"
)

// Ensure LoggingListingSource implements readingroom.ListingSource.
var _ readingroom.ListingSource = (*LoggingListingSource)(nil)

// LoggingListingSource wraps a ListingSource with discovery logging.
type LoggingListingSource struct {
	next   readingroom.ListingSource
	logger *slog.Logger
}

// NewLoggingListingSource creates a new LoggingListingSource.
func NewLoggingListingSource(next readingroom.ListingSource, logger *slog.Logger) *LoggingListingSource {
	return &LoggingListingSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source and logs the operation.
func (s *LoggingListingSource) Discover(ctx context.Context) (links []readingroom.DocumentLink, err error) {
	defer func(begin time.Time) {
		s.logger.Info("listing discovery",
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx)
}
