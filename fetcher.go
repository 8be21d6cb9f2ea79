package readingroom

import (
	"context"
	"fmt"
)

// FetchOutcome classifies the result of fetching one discovered item.
type FetchOutcome int

// Fetch outcomes. Every item resolves to exactly one of these; none of them
// is fatal to the pipeline.
const (
	// OutcomeIndexed means the binary was downloaded, extracted, and
	// committed to the store.
	OutcomeIndexed FetchOutcome = iota

	// OutcomeSkippedDuplicate means a document with the same source URL
	// already exists, detected either by pre-check or by the store's
	// uniqueness constraint.
	OutcomeSkippedDuplicate

	// OutcomeFailedTransfer means a network-level error (timeout,
	// connection reset) interrupted the transfer.
	OutcomeFailedTransfer

	// OutcomeFailedTransferStatus means the server answered with a
	// non-success status.
	OutcomeFailedTransferStatus
)

// String returns a short label for logging.
func (o FetchOutcome) String() string {
	switch o {
	case OutcomeIndexed:
		return "indexed"
	case OutcomeSkippedDuplicate:
		return "skipped_duplicate"
	case OutcomeFailedTransfer:
		return "failed_transfer"
	case OutcomeFailedTransferStatus:
		return "failed_transfer_status"
	default:
		return "unknown"
	}
}

// TransferProgress reports incremental download progress. Observability
// only; consumers must not derive correctness from it.
type TransferProgress struct {
	URL      string
	Received int64
	// Total is the declared transfer size from the length hint, 0 when
	// the server did not report one.
	Total int64
}

// TransferProgressFunc is called as transfer bytes arrive.
type TransferProgressFunc func(TransferProgress)

// Downloader streams a remote binary to a local path.
type Downloader interface {
	// Download retrieves url into dest, reporting progress as bytes
	// arrive. It returns the declared transfer size (0 if unreported).
	// A non-success response status is returned as *TransferStatusError.
	Download(ctx context.Context, url, dest string, progress TransferProgressFunc) (declaredSize int64, err error)
}

// TransferStatusError reports a non-success HTTP status on a transfer.
type TransferStatusError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *TransferStatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}
