// Package pdf extracts plain text from PDF documents.
package pdf

import (
	"context"
	"strings"

	"github.com/fwojciec/readingroom"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements readingroom.TextExtractor at compile time.
var _ readingroom.TextExtractor = (*Extractor)(nil)

// Extractor reads PDF files page by page. Extraction is best-effort: a page
// that cannot be decoded contributes an empty string, and only a document
// that fails to open at all returns an error.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the concatenated per-page text of the document at
// path, pages separated by newlines. Page-level failures (corrupt content
// streams, encrypted pages, scanned images without a text layer) yield an
// empty string for that page and never abort the remaining pages.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		pages = append(pages, pageText(r.Page(i)))
	}

	return strings.Join(pages, "\n"), nil
}

// pageText extracts one page's text, absorbing failures. The underlying
// reader panics on some malformed content streams, so the recover is part
// of the contract here, not defensive decoration.
func pageText(p pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	if p.V.IsNull() {
		return ""
	}

	t, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return t
}
