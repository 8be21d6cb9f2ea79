// Package slog provides logging decorators for the core services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readingroom"
)

// Ensure LoggingDocumentService implements readingroom.DocumentService.
var _ readingroom.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with operation logging.
type LoggingDocumentService struct {
	next   readingroom.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next readingroom.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// IndexDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) IndexDocument(ctx context.Context, doc *readingroom.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("index document",
			"url", doc.SourceURL,
			"id", doc.ID,
			"bytes", doc.SizeBytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.IndexDocument(ctx, doc)
}

// FindDocumentBySourceURL delegates to the wrapped service. Lookups are
// logged at debug level; they run once per discovered item.
func (s *LoggingDocumentService) FindDocumentBySourceURL(ctx context.Context, sourceURL string) (doc *readingroom.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find document by source url",
			"url", sourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocumentBySourceURL(ctx, sourceURL)
}

// SearchDocuments delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) SearchDocuments(ctx context.Context, query readingroom.SearchQuery) (results []*readingroom.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search documents",
			"text", query.Text,
			"tag", query.Tag,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchDocuments(ctx, query)
}
