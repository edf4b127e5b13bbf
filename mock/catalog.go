package mock

import (
	"context"

	"github.com/fwojciec/postindex"
)

var _ postindex.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of postindex.CatalogService.
type CatalogService struct {
	ReplaceCatalogFn func(ctx context.Context, snap *postindex.Snapshot) error
}

func (s *CatalogService) ReplaceCatalog(ctx context.Context, snap *postindex.Snapshot) error {
	return s.ReplaceCatalogFn(ctx, snap)
}
