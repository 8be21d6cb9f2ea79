package mock

import (
	"context"

	"github.com/fwojciec/readingroom"
)

var _ readingroom.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of readingroom.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *PageFetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ readingroom.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of readingroom.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url, dest string, progress readingroom.TransferProgressFunc) (int64, error)
}

func (d *Downloader) Download(ctx context.Context, url, dest string, progress readingroom.TransferProgressFunc) (int64, error) {
	return d.DownloadFn(ctx, url, dest, progress)
}

var _ readingroom.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of readingroom.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
