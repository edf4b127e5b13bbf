package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fwojciec/postindex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ postindex.CatalogService = (*CatalogService)(nil)

// CatalogService implements postindex.CatalogService using SQLite.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// ReplaceCatalog deletes all stored posts and runs and stores snap in a
// single transaction.
func (s *CatalogService) ReplaceCatalog(ctx context.Context, snap *postindex.Snapshot) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM post_keywords",
		"DELETE FROM post_tags",
		"DELETE FROM posts",
		"DELETE FROM runs",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, generated_at, post_count) VALUES (?, ?, ?)
	`, uuid.New().String(), snap.GeneratedAt, len(snap.Index.Posts)); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, p := range snap.Index.Posts {
		if err := insertPost(ctx, tx, p, i); err != nil {
			return fmt.Errorf("insert post %q: %w", p.Filename, err)
		}
	}

	return tx.Commit()
}

func insertPost(ctx context.Context, tx *sql.Tx, p *postindex.Post, position int) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO posts (filename, title, date, series, summary, content_hash, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.Filename, p.Title, p.Date, p.Series, p.Summary, p.ContentHash, position); err != nil {
		return err
	}

	for i, tag := range p.Tags {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO post_tags (filename, tag, position) VALUES (?, ?, ?)
		`, p.Filename, tag, i); err != nil {
			return err
		}
	}

	for i, keyword := range p.Keywords {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO post_keywords (filename, keyword, position) VALUES (?, ?, ?)
		`, p.Filename, keyword, i); err != nil {
			return err
		}
	}

	return nil
}
