package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/postindex"
	"github.com/fwojciec/postindex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshot(generatedAt string, posts ...*postindex.Post) *postindex.Snapshot {
	idx := postindex.NewIndex()
	for _, p := range posts {
		idx.Add(p)
	}
	return &postindex.Snapshot{GeneratedAt: generatedAt, Index: idx}
}

func countRows(t *testing.T, db *sqlite.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), query, args...).Scan(&n))
	return n
}

func TestCatalogService_ReplaceCatalog(t *testing.T) {
	t.Parallel()

	t.Run("stores posts with tags and keywords", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCatalogService(db)
		ctx := context.Background()

		snap := newSnapshot("2024-02-03 04:05",
			&postindex.Post{
				Filename: "2024-02-01-b.md", Title: "Beta", Date: "2024-02-01",
				Tags: []string{"x", "y"}, Series: "intro", Keywords: []string{"Setup"},
				ContentHash: "abcdef0123456789",
			},
			&postindex.Post{
				Filename: "2024-01-01-a.md", Title: "Alpha", Date: "2024-01-01",
				Tags: []string{"x"}, Keywords: []string{},
			},
		)

		err := svc.ReplaceCatalog(ctx, snap)

		require.NoError(t, err)
		assert.Equal(t, 2, countRows(t, db, "SELECT COUNT(*) FROM posts"))
		assert.Equal(t, 2, countRows(t, db, "SELECT COUNT(*) FROM post_tags WHERE tag = ?", "x"))
		assert.Equal(t, 1, countRows(t, db, "SELECT COUNT(*) FROM post_keywords"))

		var title, series, hash string
		var position int
		err = db.QueryRowContext(ctx,
			"SELECT title, series, content_hash, position FROM posts WHERE filename = ?",
			"2024-02-01-b.md",
		).Scan(&title, &series, &hash, &position)
		require.NoError(t, err)
		assert.Equal(t, "Beta", title)
		assert.Equal(t, "intro", series)
		assert.Equal(t, "abcdef0123456789", hash)
		assert.Equal(t, 0, position)

		var runID, generatedAt string
		var postCount int
		err = db.QueryRowContext(ctx, "SELECT id, generated_at, post_count FROM runs").
			Scan(&runID, &generatedAt, &postCount)
		require.NoError(t, err)
		assert.NotEmpty(t, runID)
		assert.Equal(t, "2024-02-03 04:05", generatedAt)
		assert.Equal(t, 2, postCount)
	})

	t.Run("replaces previous catalog", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCatalogService(db)
		ctx := context.Background()

		first := newSnapshot("2024-02-03 04:05",
			&postindex.Post{Filename: "old.md", Tags: []string{"gone"}, Keywords: []string{"Old"}},
		)
		second := newSnapshot("2024-02-04 05:06",
			&postindex.Post{Filename: "new.md", Tags: []string{"kept"}, Keywords: []string{}},
		)

		require.NoError(t, svc.ReplaceCatalog(ctx, first))
		require.NoError(t, svc.ReplaceCatalog(ctx, second))

		assert.Equal(t, 1, countRows(t, db, "SELECT COUNT(*) FROM posts"))
		assert.Equal(t, 0, countRows(t, db, "SELECT COUNT(*) FROM posts WHERE filename = ?", "old.md"))
		assert.Equal(t, 0, countRows(t, db, "SELECT COUNT(*) FROM post_tags WHERE tag = ?", "gone"))
		assert.Equal(t, 0, countRows(t, db, "SELECT COUNT(*) FROM post_keywords"))
		assert.Equal(t, 1, countRows(t, db, "SELECT COUNT(*) FROM runs"))
	})

	t.Run("keeps catalog when insert fails", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCatalogService(db)
		ctx := context.Background()

		require.NoError(t, svc.ReplaceCatalog(ctx, newSnapshot("2024-02-03 04:05",
			&postindex.Post{Filename: "a.md"},
		)))

		// Duplicate filenames violate the primary key.
		dup := newSnapshot("2024-02-04 05:06",
			&postindex.Post{Filename: "b.md"},
			&postindex.Post{Filename: "b.md"},
		)
		err := svc.ReplaceCatalog(ctx, dup)

		require.Error(t, err)
		assert.Equal(t, 1, countRows(t, db, "SELECT COUNT(*) FROM posts WHERE filename = ?", "a.md"))
	})
}
