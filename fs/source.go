// Package fs provides file-based post sources and output writers.
package fs

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/postindex"
)

// PostExt is the extension of post files.
const PostExt = ".md"

// Ensure PostSource implements postindex.PostSource at compile time.
var _ postindex.PostSource = (*PostSource)(nil)

// PostSource reads markdown posts from a single directory. Subdirectories
// are not scanned.
type PostSource struct {
	dir     string
	exclude []string
}

// NewPostSource creates a PostSource for dir. Files whose names match any
// of the exclude glob patterns are skipped.
func NewPostSource(dir string, exclude ...string) (*PostSource, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, postindex.Errorf(postindex.EINVALID, "invalid exclude pattern %q", pattern)
		}
	}
	return &PostSource{dir: dir, exclude: exclude}, nil
}

// ListPosts returns the names of post files sorted descending, so that
// date-prefixed names list newest first.
func (s *PostSource) ListPosts(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, postindex.Errorf(postindex.ENOTFOUND, "posts directory %q not found", s.dir)
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, PostExt) || s.excluded(name) {
			continue
		}

		ok, err := s.isFile(entry)
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, name)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// ReadPost reads the named post. Line endings are normalized to "\n".
func (s *PostSource) ReadPost(ctx context.Context, name string) (*postindex.SourceFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, postindex.Errorf(postindex.EINVALID, "post %q is not valid UTF-8", name)
	}

	return &postindex.SourceFile{
		Name:    name,
		Content: normalizeNewlines(string(data)),
		Hash:    hashContent(data),
	}, nil
}

func (s *PostSource) excluded(name string) bool {
	for _, pattern := range s.exclude {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// isFile reports whether entry is a regular file, following symlinks.
func (s *PostSource) isFile(entry os.DirEntry) (bool, error) {
	if entry.Type().IsRegular() {
		return true, nil
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false, nil
	}

	info, err := os.Stat(filepath.Join(s.dir, entry.Name()))
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", entry.Name(), err)
	}
	return info.Mode().IsRegular(), nil
}

// normalizeNewlines converts "\r\n" and lone "\r" to "\n".
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content []byte) string {
	h := xxhash.Sum64(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}
