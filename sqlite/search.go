package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/readingroom"
)

// SearchDocuments runs the combined free-text/filter/tag query.
//
// The base projection LEFT JOINs tags so untagged documents still appear.
// When free text is present the relation additionally joins through the FTS
// index and the match predicate opens the WHERE clause; every other
// predicate is optional and appended with AND. No explicit ORDER BY: result
// order is whatever SQLite naturally returns, and callers must not rely on
// it.
func (s *DocumentService) SearchDocuments(ctx context.Context, q readingroom.SearchQuery) ([]*readingroom.SearchResult, error) {
	// A query with no criteria never touches the database.
	if !q.HasCriteria() {
		return []*readingroom.SearchResult{}, nil
	}

	var query strings.Builder
	var clauses []string
	var args []any

	if q.Text != "" {
		query.WriteString(`
			SELECT d.id, d.title, d.file_path, d.download_date, d.file_size, t.tag
			FROM documents d
			JOIN documents_fts f ON d.id = f.rowid
			LEFT JOIN tags t ON d.id = t.document_id
			WHERE documents_fts MATCH ?`)
		args = append(args, matchQuery(q.Text))
	} else {
		query.WriteString(`
			SELECT d.id, d.title, d.file_path, d.download_date, d.file_size, t.tag
			FROM documents d
			LEFT JOIN tags t ON d.id = t.document_id`)
	}

	if q.StartDate != nil {
		clauses = append(clauses, "d.download_date >= ?")
		args = append(args, q.StartDate.UTC().Format(time.RFC3339))
	}
	if q.EndDate != nil {
		clauses = append(clauses, "d.download_date <= ?")
		args = append(args, q.EndDate.UTC().Format(time.RFC3339))
	}
	if q.MinSize != nil {
		clauses = append(clauses, "d.file_size >= ?")
		args = append(args, *q.MinSize)
	}
	if q.MaxSize != nil {
		clauses = append(clauses, "d.file_size <= ?")
		args = append(args, *q.MaxSize)
	}
	if q.Tag != "" {
		clauses = append(clauses, "t.tag = ?")
		args = append(args, q.Tag)
	}

	if len(clauses) > 0 {
		// The FTS branch already opened the WHERE clause.
		if q.Text != "" {
			query.WriteString(" AND ")
		} else {
			query.WriteString(" WHERE ")
		}
		query.WriteString(strings.Join(clauses, " AND "))
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*readingroom.SearchResult{}
	for rows.Next() {
		var r readingroom.SearchResult
		var downloadDate string
		var tag sql.NullString

		if err := rows.Scan(&r.DocumentID, &r.Title, &r.LocalPath,
			&downloadDate, &r.SizeBytes, &tag); err != nil {
			return nil, err
		}

		r.DownloadedAt, err = parseRFC3339(downloadDate, "download_date")
		if err != nil {
			return nil, err
		}
		if tag.Valid {
			r.Tag = tag.String
		}

		results = append(results, &r)
	}

	return results, rows.Err()
}

// matchQuery converts user free text into an FTS5 match expression: each
// whitespace-separated word becomes a quoted prefix token, and tokens are
// joined with spaces so all of them must match. A word "abc" matches any
// indexed token beginning with "abc" - including unrelated longer words
// sharing the prefix, which is the contract, not a bug.
func matchQuery(input string) string {
	words := strings.Fields(input)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, `"`+strings.ReplaceAll(w, `"`, `""`)+`"*`)
	}
	return strings.Join(parts, " ")
}
