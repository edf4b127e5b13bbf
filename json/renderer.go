// Package json renders the machine-readable post metadata file.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/fwojciec/postindex"
)

// Version is the schema version written to every document.
const Version = "1.0"

// Document is the JSON metadata file.
type Document struct {
	Version     string            `json:"version"`
	GeneratedAt string            `json:"generated_at"`
	PostCount   int               `json:"post_count"`
	Posts       []*postindex.Post `json:"posts"`
	Tags        Filenames         `json:"tags"`
	Series      Filenames         `json:"series"`
}

// NewDocument builds the Document for a snapshot. Series list their posts
// in index order, not by date.
func NewDocument(snap *postindex.Snapshot) *Document {
	idx := snap.Index
	return &Document{
		Version:     Version,
		GeneratedAt: snap.GeneratedAt,
		PostCount:   len(idx.Posts),
		Posts:       idx.Posts,
		Tags:        NewFilenames(idx.Tags),
		Series:      NewFilenames(idx.Series),
	}
}

// Filenames maps group names to post file names. Keys are encoded in the
// order groups were first created.
type Filenames []FilenameGroup

// FilenameGroup is one entry of Filenames.
type FilenameGroup struct {
	Name      string
	Filenames []string
}

// NewFilenames converts groups to Filenames.
func NewFilenames(groups *postindex.Groups) Filenames {
	f := make(Filenames, 0, groups.Len())
	for _, g := range groups.All() {
		f = append(f, FilenameGroup{Name: g.Name, Filenames: g.Filenames()})
	}
	return f
}

// MarshalJSON encodes f as an object with keys in slice order.
func (f Filenames) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(g.Name)
		if err != nil {
			return nil, err
		}
		names := g.Filenames
		if names == nil {
			names = []string{}
		}
		value, err := marshal(names)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Ensure Renderer implements postindex.Renderer at compile time.
var _ postindex.Renderer = (*Renderer)(nil)

// Renderer renders a snapshot as an indented JSON document.
type Renderer struct {
	Indent string
}

// NewRenderer creates a Renderer with two-space indentation.
func NewRenderer() *Renderer {
	return &Renderer{Indent: "  "}
}

// Render writes the document. Non-ASCII text and HTML characters are
// written literally. The output has no trailing newline.
func (r *Renderer) Render(w io.Writer, snap *postindex.Snapshot) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", r.Indent)
	if err := enc.Encode(NewDocument(snap)); err != nil {
		return err
	}
	out := unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	_, err := w.Write(out)
	return err
}

// unescapeLineSeparators replaces the \u2028 and \u2029 escapes that
// encoding/json always emits with the literal characters. Escaped
// backslashes are skipped, so text such as `\\u2028` is left alone.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if b[i+1] == 'u' && i+6 <= len(b) {
			switch string(b[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

// marshal encodes v without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
