package http

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/readingroom"
)

// DefaultDownloadTimeout bounds a single document transfer.
const DefaultDownloadTimeout = 30 * time.Second

// downloadBufferSize is the chunk size for streaming writes.
const downloadBufferSize = 8 * 1024

// Ensure Downloader implements readingroom.Downloader at compile time.
var _ readingroom.Downloader = (*Downloader)(nil)

// Downloader streams document binaries from URLs to local files.
type Downloader struct {
	client  *http.Client
	timeout time.Duration
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithDownloadTimeout sets the timeout for a whole transfer.
// Defaults to DefaultDownloadTimeout (30s) if not specified.
func WithDownloadTimeout(d time.Duration) DownloaderOption {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// NewDownloader creates a new Downloader.
func NewDownloader(opts ...DownloaderOption) *Downloader {
	dl := &Downloader{
		timeout: DefaultDownloadTimeout,
	}
	for _, opt := range opts {
		opt(dl)
	}

	dl.client = &http.Client{
		Timeout: dl.timeout,
	}

	return dl
}

// Download retrieves url into dest, creating parent directories as needed.
// It returns the declared transfer size from the Content-Length header, 0
// when the server does not report one. A non-success response status is
// returned as *readingroom.TransferStatusError before any bytes are
// written. On a mid-transfer error the partially written file is left on
// disk; callers treat the transfer as failed regardless.
func (dl *Downloader) Download(ctx context.Context, url, dest string, progress readingroom.TransferProgressFunc) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := dl.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &readingroom.TransferStatusError{StatusCode: resp.StatusCode, URL: url}
	}

	declared := resp.ContentLength
	if declared < 0 {
		declared = 0
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, err
	}

	f, err := os.Create(dest)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var received int64
	buf := make([]byte, downloadBufferSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := f.Write(buf[:n]); writeErr != nil {
				return declared, writeErr
			}
			received += int64(n)
			if progress != nil {
				progress(readingroom.TransferProgress{
					URL:      url,
					Received: received,
					Total:    declared,
				})
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return declared, readErr
		}
	}

	return declared, nil
}
