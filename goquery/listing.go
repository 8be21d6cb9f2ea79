// Package goquery provides CSS-selector based parsing of reading-room
// listing pages.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readingroom"
)

const (
	// documentSuffix is the link-target convention for document files on
	// the listing.
	documentSuffix = ".pdf"

	// nextPagerSelector marks the presence of a further listing page.
	// Its absence on a page ends the crawl.
	nextPagerSelector = "a.pager-next"
)

// Compile-time interface verification.
var _ readingroom.ListingParser = (*Parser)(nil)

// Parser extracts document links and the next-page marker from listing HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseListing parses one listing page. Anchors whose href ends in the
// document suffix become links; the title is the trimmed link text, falling
// back to the last path segment of the href. Relative hrefs are resolved
// against baseURL.
func (p *Parser) ParseListing(html string, baseURL string) (*readingroom.ListingPage, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, readingroom.Errorf(readingroom.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, readingroom.Errorf(readingroom.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &readingroom.ListingPage{}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || !strings.HasSuffix(href, documentSuffix) {
			return
		}

		title := strings.TrimSpace(sel.Text())
		if title == "" {
			title = lastPathSegment(href)
		}

		page.Links = append(page.Links, readingroom.DocumentLink{
			Title: title,
			URL:   resolveURL(base, href),
		})
	})

	page.HasNext = doc.Find(nextPagerSelector).Length() > 0

	return page, nil
}

// resolveURL resolves href relative to base. Unparseable hrefs pass through
// unchanged.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// lastPathSegment returns the portion of href after the final slash.
func lastPathSegment(href string) string {
	if idx := strings.LastIndex(href, "/"); idx != -1 {
		return href[idx+1:]
	}
	return href
}
