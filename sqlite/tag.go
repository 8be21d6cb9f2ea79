package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/readingroom"
)

// Compile-time interface verification.
var _ readingroom.TagService = (*TagService)(nil)

// TagService implements readingroom.TagService using SQLite.
type TagService struct {
	db *DB
}

// NewTagService creates a new TagService.
func NewTagService(db *DB) *TagService {
	return &TagService{db: db}
}

// AddTag appends a tag row for the document. There is no uniqueness
// constraint on (document_id, tag); appending the same tag twice creates
// two rows.
func (s *TagService) AddTag(ctx context.Context, documentID int64, tag string) error {
	if strings.TrimSpace(tag) == "" {
		return readingroom.Errorf(readingroom.EINVALID, "tag must not be blank")
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tags (document_id, tag) VALUES (?, ?)",
		documentID, tag)
	if err != nil {
		if isForeignKeyViolation(err) {
			return readingroom.Errorf(readingroom.ENOTFOUND, "document %d not found", documentID)
		}
		return err
	}

	return nil
}

// TagCounts lists all tags with their row counts, most used first.
// Identical duplicate rows on one document each count toward that tag.
func (s *TagService) TagCounts(ctx context.Context) ([]readingroom.TagCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tag, COUNT(*) as count
		FROM tags
		GROUP BY tag
		ORDER BY count DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []readingroom.TagCount
	for rows.Next() {
		var tc readingroom.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}

	return counts, rows.Err()
}
