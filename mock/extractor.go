package mock

import (
	"context"

	"github.com/fwojciec/readingroom"
)

var _ readingroom.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of readingroom.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(ctx context.Context, path string) (string, error)
}

func (e *TextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	return e.ExtractTextFn(ctx, path)
}
