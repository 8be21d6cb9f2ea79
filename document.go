package readingroom

import (
	"context"
	"strconv"
	"time"
)

// DefaultTag is applied to every document at indexing time. Users layer
// their own tags on top of it via TagService.AddTag.
const DefaultTag = "Uncategorized"

// Document represents one acquired item: its metadata, the local binary,
// and the text extracted from it. Documents are created exactly once by the
// ingest pipeline and never updated or deleted afterwards.
type Document struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	SourceURL    string    `json:"sourceUrl"`
	LocalPath    string    `json:"localPath"`
	SizeBytes    int64     `json:"sizeBytes"`
	DownloadedAt time.Time `json:"downloadedAt"`
	Content      string    `json:"content"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// SearchQuery combines free-text search with structured filters and an
// optional tag facet. Nil/zero fields contribute no predicate.
type SearchQuery struct {
	// Text is decomposed into whitespace-separated words, each matched as
	// a prefix against the search index; all words must match.
	Text string `json:"text"`

	// Inclusive bounds on DownloadedAt.
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`

	// Inclusive bounds on SizeBytes.
	MinSize *int64 `json:"minSize"`
	MaxSize *int64 `json:"maxSize"`

	// Tag, if non-empty, requires an exact tag match.
	Tag string `json:"tag"`
}

// HasCriteria reports whether the query carries any predicate at all.
// A query with no criteria must not be executed against the store.
func (q SearchQuery) HasCriteria() bool {
	return q.Text != "" || q.Tag != "" ||
		q.StartDate != nil || q.EndDate != nil ||
		q.MinSize != nil || q.MaxSize != nil
}

// SearchResult is one row of a search. A document with multiple tag rows
// appears once per tag; Tag is empty for documents with no tag rows.
type SearchResult struct {
	DocumentID   int64     `json:"documentId"`
	Title        string    `json:"title"`
	LocalPath    string    `json:"localPath"`
	DownloadedAt time.Time `json:"downloadedAt"`
	SizeBytes    int64     `json:"sizeBytes"`
	Tag          string    `json:"tag"`
}

// DocumentService represents the durable document store and its query engine.
type DocumentService interface {
	// IndexDocument inserts the document, its search index entry, and the
	// default tag as one committed unit, assigning ID and DownloadedAt.
	// Returns ECONFLICT if a document with the same SourceURL exists.
	IndexDocument(ctx context.Context, doc *Document) error

	// FindDocumentBySourceURL retrieves a document by its origin URL.
	// Returns ENOTFOUND if no such document exists.
	FindDocumentBySourceURL(ctx context.Context, sourceURL string) (*Document, error)

	// SearchDocuments runs the combined free-text/filter/tag query.
	// A query with no criteria returns an empty result without touching
	// the store. Result ordering is whatever the store naturally returns.
	SearchDocuments(ctx context.Context, q SearchQuery) ([]*SearchResult, error)
}

// ParseSizeFilter interprets a user-supplied size filter string. Only a
// non-negative integer produces a filter; malformed or empty input means
// "not specified", never an error.
func ParseSizeFilter(s string) *int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
