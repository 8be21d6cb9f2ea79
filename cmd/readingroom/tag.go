package main

import (
	"fmt"

	"github.com/fwojciec/readingroom"
)

// Run executes the tag command.
func (c *TagCmd) Run(deps *Dependencies) error {
	if err := deps.Tags.AddTag(deps.Ctx, c.ID, c.Tag); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readingroom.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Tagged document %d with %q\n", c.ID, c.Tag)
	return nil
}

// Run executes the tags command.
func (c *TagsCmd) Run(deps *Dependencies) error {
	counts, err := deps.Tags.TagCounts(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readingroom.ErrorMessage(err))
		return err
	}

	if len(counts) == 0 {
		fmt.Fprintln(deps.Stdout, "No tags found. Run 'readingroom ingest' first.")
		return nil
	}

	for _, tc := range counts {
		fmt.Fprintf(deps.Stdout, "%-40s %d\n", tc.Tag, tc.Count)
	}
	return nil
}
