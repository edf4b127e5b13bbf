// Package slog provides log/slog decorators for postindex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postindex"
)

// Ensure LoggingPostSource implements postindex.PostSource.
var _ postindex.PostSource = (*LoggingPostSource)(nil)

// LoggingPostSource wraps a PostSource with debug logging.
type LoggingPostSource struct {
	next   postindex.PostSource
	logger *slog.Logger
}

// NewLoggingPostSource creates a new LoggingPostSource.
func NewLoggingPostSource(next postindex.PostSource, logger *slog.Logger) *LoggingPostSource {
	return &LoggingPostSource{next: next, logger: logger}
}

// ListPosts delegates to the wrapped source and logs the result.
func (s *LoggingPostSource) ListPosts(ctx context.Context) (names []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("list posts",
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListPosts(ctx)
}

// ReadPost delegates to the wrapped source and logs the read.
func (s *LoggingPostSource) ReadPost(ctx context.Context, name string) (file *postindex.SourceFile, err error) {
	defer func(begin time.Time) {
		attrs := []any{"name", name, "duration", time.Since(begin)}
		if file != nil {
			attrs = append(attrs, "bytes", len(file.Content))
		}
		if err != nil {
			s.logger.Error("read post", append(attrs, "err", err)...)
			return
		}
		s.logger.Debug("read post", attrs...)
	}(time.Now())
	return s.next.ReadPost(ctx, name)
}
