package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/readingroom"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ readingroom.DocumentService = (*DocumentService)(nil)

// DocumentService implements readingroom.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// IndexDocument inserts the document row, its search index entry, and the
// default tag in one transaction. The FTS row is written with an explicit
// rowid equal to the document id, so the 1:1 keying holds regardless of
// insertion order across concurrent workers.
func (s *DocumentService) IndexDocument(ctx context.Context, doc *readingroom.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.DownloadedAt.IsZero() {
		doc.DownloadedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	downloadDate := doc.DownloadedAt.Format(time.RFC3339)

	res, err := tx.ExecContext(ctx, `
		INSERT INTO documents (title, url, file_path, file_size, download_date)
		VALUES (?, ?, ?, ?, ?)
	`, doc.Title, doc.SourceURL, doc.LocalPath, doc.SizeBytes, downloadDate)
	if err != nil {
		if isUniqueViolation(err) {
			return readingroom.Errorf(readingroom.ECONFLICT,
				"document with source URL %q already exists", doc.SourceURL)
		}
		return err
	}

	doc.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents_fts (rowid, title, content, url, file_path, file_size, download_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Title, doc.Content, doc.SourceURL, doc.LocalPath, doc.SizeBytes, downloadDate)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO tags (document_id, tag) VALUES (?, ?)",
		doc.ID, readingroom.DefaultTag)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// FindDocumentBySourceURL retrieves a document by its origin URL.
func (s *DocumentService) FindDocumentBySourceURL(ctx context.Context, sourceURL string) (*readingroom.Document, error) {
	var doc readingroom.Document
	var downloadDate string

	err := s.db.QueryRowContext(ctx, `
		SELECT d.id, d.title, d.url, d.file_path, d.file_size, d.download_date, f.content
		FROM documents d
		JOIN documents_fts f ON d.id = f.rowid
		WHERE d.url = ?
	`, sourceURL).Scan(&doc.ID, &doc.Title, &doc.SourceURL, &doc.LocalPath,
		&doc.SizeBytes, &downloadDate, &doc.Content)

	if err == sql.ErrNoRows {
		return nil, readingroom.Errorf(readingroom.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.DownloadedAt, err = parseRFC3339(downloadDate, "download_date")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint error.
func isUniqueViolation(err error) bool {
	var serr *sqlite3.Error
	return errors.As(err, &serr) && serr.ExtendedCode() == sqlite3.CONSTRAINT_UNIQUE
}

// isForeignKeyViolation reports whether err is a SQLite FOREIGN KEY
// constraint error.
func isForeignKeyViolation(err error) bool {
	var serr *sqlite3.Error
	return errors.As(err, &serr) && serr.ExtendedCode() == sqlite3.CONSTRAINT_FOREIGNKEY
}
