// Package reindex orchestrates one indexing run: it collects posts, renders
// the markdown and JSON outputs and stores the optional catalog.
package reindex

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/postindex"
)

// Output pairs an output path with the renderer producing its content.
type Output struct {
	Path     string
	Renderer postindex.Renderer
}

// Indexer regenerates the post index outputs.
type Indexer struct {
	Source postindex.PostSource
	Writer postindex.FileWriter

	// Outputs are rendered and written in order.
	Outputs []Output

	// Catalog is optional.
	Catalog postindex.CatalogService

	// Concurrency limits parallel post reads. Defaults to DefaultConcurrency.
	Concurrency int

	// DryRun collects and renders without writing anything.
	DryRun bool

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a run.
type Result struct {
	Snapshot *postindex.Snapshot
	Written  []string
}

// Run collects all posts and regenerates every output from one snapshot.
// Outputs are rendered before anything is written, so a render failure
// leaves existing files untouched. A failed write stops the run and may
// leave earlier outputs updated and later ones stale.
func (ix *Indexer) Run(ctx context.Context) (*Result, error) {
	idx, err := Collect(ctx, ix.Source, ix.Concurrency)
	if err != nil {
		return nil, err
	}

	now := ix.Now
	if now == nil {
		now = time.Now
	}

	snap := &postindex.Snapshot{
		GeneratedAt: now().Format(postindex.TimestampLayout),
		Index:       idx,
	}
	result := &Result{Snapshot: snap}

	rendered := make([][]byte, len(ix.Outputs))
	for i, out := range ix.Outputs {
		var buf bytes.Buffer
		if err := out.Renderer.Render(&buf, snap); err != nil {
			return nil, fmt.Errorf("render %s: %w", out.Path, err)
		}
		rendered[i] = buf.Bytes()
	}

	if ix.DryRun {
		return result, nil
	}

	for i, out := range ix.Outputs {
		if err := ix.Writer.WriteFile(ctx, out.Path, rendered[i]); err != nil {
			return nil, fmt.Errorf("write %s: %w", out.Path, err)
		}
		result.Written = append(result.Written, out.Path)
	}

	if ix.Catalog != nil {
		if err := ix.Catalog.ReplaceCatalog(ctx, snap); err != nil {
			return nil, fmt.Errorf("replace catalog: %w", err)
		}
	}

	return result, nil
}
