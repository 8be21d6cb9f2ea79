package readingroom

import "context"

// DocumentLink is a (title, source URL) pair harvested from a listing page.
type DocumentLink struct {
	Title string
	URL   string
}

// ListingPage is the parsed form of one listing page: the document links it
// carries and whether a further page exists.
type ListingPage struct {
	Links   []DocumentLink
	HasNext bool
}

// ListingParser extracts document links and the next-page marker from
// listing page HTML. Relative hrefs are resolved against baseURL.
type ListingParser interface {
	ParseListing(html string, baseURL string) (*ListingPage, error)
}

// ListingSource walks the paginated listing and returns every discovered
// document link. The walk stops cleanly at the first page without a
// next-page marker; a page fetch failure ends the walk early with whatever
// was discovered so far.
type ListingSource interface {
	Discover(ctx context.Context) ([]DocumentLink, error)
}

// PageFetcher retrieves page HTML from URLs.
type PageFetcher interface {
	// Fetch retrieves the body for the URL. The context controls timeout
	// and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
