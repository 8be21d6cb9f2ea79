package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/readingroom"
	"github.com/fwojciec/readingroom/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	rc, err := fs.OpenBinary(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readingroom.ErrorMessage(err))
		return err
	}
	defer rc.Close()

	out := deps.Stdout
	if c.Dest != "" {
		f, err := os.Create(c.Dest)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		out = f
	}

	n, err := io.Copy(out, rc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if c.Dest != "" {
		fmt.Fprintf(deps.Stdout, "Wrote %d bytes to %s\n", n, c.Dest)
	}
	return nil
}
