package mock

import (
	"io"

	"github.com/fwojciec/postindex"
)

var _ postindex.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of postindex.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, snap *postindex.Snapshot) error
}

func (r *Renderer) Render(w io.Writer, snap *postindex.Snapshot) error {
	return r.RenderFn(w, snap)
}
