package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/readingroom"
	main "github.com/fwojciec/readingroom/cmd/readingroom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("streams to stdout", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 payload"), 0644))

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.ExportCmd{Path: path}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "%PDF-1.4 payload", stdout.String())
	})

	t.Run("copies to destination file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.pdf")
		require.NoError(t, os.WriteFile(path, []byte("payload"), 0644))
		dest := filepath.Join(dir, "copy.pdf")

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.ExportCmd{Path: path, Dest: dest}
		require.NoError(t, cmd.Run(deps))

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
		assert.Contains(t, stdout.String(), "Wrote 7 bytes")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.ExportCmd{Path: filepath.Join(t.TempDir(), "missing.pdf")}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, readingroom.ENOTFOUND, readingroom.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}
