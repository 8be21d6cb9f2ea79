package mock

import (
	"context"

	"github.com/fwojciec/readingroom"
)

var _ readingroom.TagService = (*TagService)(nil)

// TagService is a mock implementation of readingroom.TagService.
type TagService struct {
	AddTagFn    func(ctx context.Context, documentID int64, tag string) error
	TagCountsFn func(ctx context.Context) ([]readingroom.TagCount, error)
}

func (s *TagService) AddTag(ctx context.Context, documentID int64, tag string) error {
	return s.AddTagFn(ctx, documentID, tag)
}

func (s *TagService) TagCounts(ctx context.Context) ([]readingroom.TagCount, error) {
	return s.TagCountsFn(ctx)
}
