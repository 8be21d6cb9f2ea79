package mock

import (
	"context"

	"github.com/fwojciec/readingroom"
)

var _ readingroom.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of readingroom.DocumentService.
type DocumentService struct {
	IndexDocumentFn           func(ctx context.Context, doc *readingroom.Document) error
	FindDocumentBySourceURLFn func(ctx context.Context, sourceURL string) (*readingroom.Document, error)
	SearchDocumentsFn         func(ctx context.Context, query readingroom.SearchQuery) ([]*readingroom.SearchResult, error)
}

func (s *DocumentService) IndexDocument(ctx context.Context, doc *readingroom.Document) error {
	return s.IndexDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentBySourceURL(ctx context.Context, sourceURL string) (*readingroom.Document, error) {
	return s.FindDocumentBySourceURLFn(ctx, sourceURL)
}

func (s *DocumentService) SearchDocuments(ctx context.Context, query readingroom.SearchQuery) ([]*readingroom.SearchResult, error) {
	return s.SearchDocumentsFn(ctx, query)
}
