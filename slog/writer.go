package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postindex"
)

// Ensure LoggingFileWriter implements postindex.FileWriter.
var _ postindex.FileWriter = (*LoggingFileWriter)(nil)

// LoggingFileWriter wraps a FileWriter with logging.
type LoggingFileWriter struct {
	next   postindex.FileWriter
	logger *slog.Logger
}

// NewLoggingFileWriter creates a new LoggingFileWriter.
func NewLoggingFileWriter(next postindex.FileWriter, logger *slog.Logger) *LoggingFileWriter {
	return &LoggingFileWriter{next: next, logger: logger}
}

// WriteFile delegates to the wrapped writer and logs the write.
func (w *LoggingFileWriter) WriteFile(ctx context.Context, path string, data []byte) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write output",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteFile(ctx, path, data)
}
