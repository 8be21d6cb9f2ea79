package main

import (
	"fmt"

	"github.com/fwojciec/readingroom"
	"github.com/fwojciec/readingroom/crawl"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	// Report each completed transfer with its byte count.
	deps.Pipeline.Progress = func(p readingroom.TransferProgress) {
		if p.Total > 0 && p.Received >= p.Total {
			fmt.Fprintf(deps.Stdout, "  %s  %s\n",
				crawl.TruncateURL(p.URL, 60), crawl.FormatBytes(p.Received))
		}
	}

	result, err := deps.Pipeline.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readingroom.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Discovered %d documents: %d indexed, %d skipped, %d failed\n",
		result.Discovered, result.Indexed, result.Skipped, result.Failed)
	return nil
}
