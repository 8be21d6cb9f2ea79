package readingroom

import "context"

// TagCount is one row of the tag listing: a tag string and the number of
// tag rows carrying it. Duplicate identical tag rows on one document each
// count; this is a property of the per-row relation, not a bug.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TagService manages the user-curated tag facet.
type TagService interface {
	// AddTag appends a tag row for the document. Returns EINVALID for a
	// blank or whitespace-only tag. Duplicate tags are permitted.
	AddTag(ctx context.Context, documentID int64, tag string) error

	// TagCounts lists all tags with their row counts, ordered by count
	// descending.
	TagCounts(ctx context.Context) ([]TagCount, error)
}
