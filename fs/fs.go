// Package fs provides the on-disk layout for downloaded document binaries.
package fs

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/readingroom"
)

// DefaultDirName is the output directory created under the working
// directory when no explicit path is given.
const DefaultDirName = "foia_documents"

// EnsureDir creates the output directory if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return readingroom.Errorf(readingroom.EINTERNAL, "create output dir %s: %v", dir, err)
	}
	return nil
}

// FilenameForURL derives a local filename from a source URL: the last path
// segment of the URL. URLs without a usable segment get a stable hashed
// name so two such URLs never collide on disk.
func FilenameForURL(rawURL string) string {
	name := lastSegment(rawURL)
	if name != "" {
		return name
	}
	return fmt.Sprintf("doc-%016x.pdf", xxhash.Sum64String(rawURL))
}

func lastSegment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(u.Path, "/")
	name := segments[len(segments)-1]
	// Reject names that would escape the output directory.
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return ""
	}
	return name
}

// OpenBinary opens a stored document binary for streaming. A missing file
// maps to ENOTFOUND so callers can distinguish a stale index row from an
// I/O failure.
func OpenBinary(localPath string) (io.ReadCloser, error) {
	f, err := os.Open(localPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, readingroom.Errorf(readingroom.ENOTFOUND, "document file not found: %s", localPath)
		}
		return nil, err
	}
	return f, nil
}

// DestPath joins the output directory with the filename derived from the
// source URL.
func DestPath(dir, sourceURL string) string {
	return filepath.Join(dir, FilenameForURL(sourceURL))
}
