package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/postindex"
	"github.com/natefinch/atomic"
)

// Ensure FileWriter implements postindex.FileWriter at compile time.
var _ postindex.FileWriter = (*FileWriter)(nil)

// FileWriter writes output files. Each file is replaced atomically, so a
// reader never sees a partially written index.
type FileWriter struct {
	baseDir string
}

// NewFileWriter creates a new FileWriter. Relative paths passed to
// WriteFile are resolved against baseDir.
func NewFileWriter(baseDir string) *FileWriter {
	return &FileWriter{baseDir: baseDir}
}

// WriteFile replaces the file at path with data.
func (w *FileWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := path
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(w.baseDir, path)
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	if err := atomic.WriteFile(fullPath, bytes.NewReader(data)); err != nil {
		return err
	}

	// atomic.WriteFile keeps the temp file's 0600 mode for new files.
	return os.Chmod(fullPath, 0644)
}
