package mock

import (
	"context"

	"github.com/fwojciec/readingroom"
)

var _ readingroom.ListingSource = (*ListingSource)(nil)

// ListingSource is a mock implementation of readingroom.ListingSource.
type ListingSource struct {
	DiscoverFn func(ctx context.Context) ([]readingroom.DocumentLink, error)
}

func (s *ListingSource) Discover(ctx context.Context) ([]readingroom.DocumentLink, error) {
	return s.DiscoverFn(ctx)
}

var _ readingroom.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of readingroom.ListingParser.
type ListingParser struct {
	ParseListingFn func(html, baseURL string) (*readingroom.ListingPage, error)
}

func (p *ListingParser) ParseListing(html, baseURL string) (*readingroom.ListingPage, error) {
	return p.ParseListingFn(html, baseURL)
}
