package mock

import (
	"context"

	"github.com/fwojciec/postindex"
)

var _ postindex.FileWriter = (*FileWriter)(nil)

// FileWriter is a mock implementation of postindex.FileWriter.
type FileWriter struct {
	WriteFileFn func(ctx context.Context, path string, data []byte) error
}

func (w *FileWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	return w.WriteFileFn(ctx, path, data)
}
