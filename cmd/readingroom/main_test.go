package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/readingroom/cmd/readingroom"
	"github.com/fwojciec/readingroom/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main wired to a throwaway database.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "ingest")
		assert.Contains(t, stdout.String(), "search")
	})

	t.Run("ingest output directory defaults to the shared layout", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli,
			kong.Exit(func(int) {}),
			kong.Vars{"output_default": fs.DefaultDirName},
		)
		require.NoError(t, err)

		_, err = parser.Parse([]string{"ingest", "https://example.org/search"})
		require.NoError(t, err)
		assert.Equal(t, fs.DefaultDirName, cli.Ingest.Output)
	})

	t.Run("search against a fresh database", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"search", "--text", "annual"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No documents matched")
	})

	t.Run("tags against a fresh database", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"tags"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No tags found")
	})

	t.Run("tag on unknown document", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"tag", "99", "History"}, &bytes.Buffer{}, stderr)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("unusable database path is fatal", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "missing", "nested", "test.db")
		err := m.Run(context.Background(), []string{"tags"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open database")
	})
}
