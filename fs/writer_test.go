package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/postindex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewFileWriter(dir)

		err := w.WriteFile(context.Background(), ".claude/knowledge/post-index.md", []byte("# Index"))

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(dir, ".claude", "knowledge", "post-index.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Index", string(content))
	})

	t.Run("replaces existing content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "posts.json")
		require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))
		w := fs.NewFileWriter(dir)

		err := w.WriteFile(context.Background(), "posts.json", []byte("{}"))

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(content))
	})

	t.Run("accepts absolute paths", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out", "index.md")
		w := fs.NewFileWriter("/nonexistent")

		err := w.WriteFile(context.Background(), path, []byte("x"))

		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := fs.NewFileWriter(t.TempDir())

		err := w.WriteFile(ctx, "x.md", []byte("x"))

		assert.ErrorIs(t, err, context.Canceled)
	})
}
