package readingroom

import "context"

// TextExtractor turns a downloaded binary document into plain text.
//
// Implementations are best-effort: a page that yields no text (corrupt,
// encrypted, scanned image only) contributes an empty string for that page
// and must not abort extraction of the remaining pages. A document that
// fails to open at all returns ("", err); the caller collapses that to an
// empty content string and a warning, never a pipeline failure.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}
