package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/readingroom/sqlite"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		var docCount int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&docCount)
		require.NoError(t, err)

		var ftsCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents_fts").Scan(&ftsCount)
		require.NoError(t, err)

		var tagCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tags").Scan(&tagCount)
		require.NoError(t, err)
	})

	t.Run("open is idempotent across restarts", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"

		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		reopened := sqlite.NewDB(dbPath)
		require.NoError(t, reopened.Open())
		defer reopened.Close()

		var docCount int
		err := reopened.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM documents").Scan(&docCount)
		require.NoError(t, err)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		require.Error(t, db.Open())
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})
}
