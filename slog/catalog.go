package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postindex"
)

// Ensure LoggingCatalogService implements postindex.CatalogService.
var _ postindex.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with logging.
type LoggingCatalogService struct {
	next   postindex.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next postindex.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// ReplaceCatalog delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) ReplaceCatalog(ctx context.Context, snap *postindex.Snapshot) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("replace catalog",
			"posts", len(snap.Index.Posts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceCatalog(ctx, snap)
}
