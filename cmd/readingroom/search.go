package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/readingroom"
	"github.com/fwojciec/readingroom/crawl"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query, err := c.buildQuery()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readingroom.ErrorMessage(err))
		return err
	}

	if !query.HasCriteria() {
		fmt.Fprintln(deps.Stdout, "No search criteria given. Use --text, --tag, date or size filters.")
		return nil
	}

	results, err := deps.Documents.SearchDocuments(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readingroom.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents matched.")
		return nil
	}

	for _, r := range results {
		tag := r.Tag
		if tag == "" {
			tag = "-"
		}
		fmt.Fprintf(deps.Stdout, "%6d  %-50s  %9s  %s  %s\n",
			r.DocumentID,
			crawl.TruncateURL(r.Title, 50),
			crawl.FormatBytes(r.SizeBytes),
			r.DownloadedAt.Format("2006-01-02"),
			tag,
		)
	}
	return nil
}

// buildQuery translates the command flags into a search query.
func (c *SearchCmd) buildQuery() (readingroom.SearchQuery, error) {
	query := readingroom.SearchQuery{
		Text: c.Text,
		Tag:  c.Tag,
	}

	if c.StartDate != "" {
		t, err := time.Parse("2006-01-02", c.StartDate)
		if err != nil {
			return query, readingroom.Errorf(readingroom.EINVALID, "invalid start date %q, expected YYYY-MM-DD", c.StartDate)
		}
		query.StartDate = &t
	}
	if c.EndDate != "" {
		t, err := time.Parse("2006-01-02", c.EndDate)
		if err != nil {
			return query, readingroom.Errorf(readingroom.EINVALID, "invalid end date %q, expected YYYY-MM-DD", c.EndDate)
		}
		query.EndDate = &t
	}

	query.MinSize = readingroom.ParseSizeFilter(c.MinSize)
	query.MaxSize = readingroom.ParseSizeFilter(c.MaxSize)

	return query, nil
}
