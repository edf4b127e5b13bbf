package reindex

import (
	"context"
	"fmt"

	"github.com/fwojciec/postindex"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency reads posts one at a time.
const DefaultConcurrency = 1

// Collect reads every post from src and builds the index in listing order.
// Up to concurrency posts are read at once. The first error aborts the
// collection.
func Collect(ctx context.Context, src postindex.PostSource, concurrency int) (*postindex.Index, error) {
	names, err := src.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	files := make([]*postindex.SourceFile, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, name := range names {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file, err := src.ReadPost(gctx, name)
			if err != nil {
				return fmt.Errorf("read post %s: %w", name, err)
			}
			files[i] = file
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx := postindex.NewIndex()
	for i, name := range names {
		post := postindex.NewPost(name, files[i].Content)
		post.ContentHash = files[i].Hash
		idx.Add(post)
	}

	return idx, nil
}
