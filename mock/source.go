package mock

import (
	"context"

	"github.com/fwojciec/postindex"
)

var _ postindex.PostSource = (*PostSource)(nil)

// PostSource is a mock implementation of postindex.PostSource.
type PostSource struct {
	ListPostsFn func(ctx context.Context) ([]string, error)
	ReadPostFn  func(ctx context.Context, name string) (*postindex.SourceFile, error)
}

func (s *PostSource) ListPosts(ctx context.Context) ([]string, error) {
	return s.ListPostsFn(ctx)
}

func (s *PostSource) ReadPost(ctx context.Context, name string) (*postindex.SourceFile, error) {
	return s.ReadPostFn(ctx, name)
}

// Posts returns a PostSource serving the given files. Names
// are listed in the order given.
func Posts(files ...postindex.SourceFile) *PostSource {
	byName := make(map[string]postindex.SourceFile, len(files))
	names := make([]string, 0, len(files))
	for _, f := range files {
		byName[f.Name] = f
		names = append(names, f.Name)
	}
	return &PostSource{
		ListPostsFn: func(context.Context) ([]string, error) {
			return names, nil
		},
		ReadPostFn: func(_ context.Context, name string) (*postindex.SourceFile, error) {
			f, ok := byName[name]
			if !ok {
				return nil, postindex.Errorf(postindex.ENOTFOUND, "post %q not found", name)
			}
			return &f, nil
		},
	}
}
