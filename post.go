package postindex

import (
	"context"
	"strings"
)

// Post is the normalized metadata of one post file.
type Post struct {
	Filename string   `json:"filename"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
	Series   string   `json:"series"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`

	// ContentHash is the hex xxHash of the source text. Only the SQLite
	// catalog stores it.
	ContentHash string `json:"-"`
}

// NewPost builds a Post from a file name and its full text.
func NewPost(filename, text string) *Post {
	fm := ExtractFrontMatter(text)

	p := &Post{
		Filename: filename,
		Title:    filename,
		Tags:     []string{},
		Keywords: ExtractKeywords(text, MaxKeywords),
	}

	if v, ok := fm.Get("title"); ok {
		p.Title = v.String()
	}
	if v, ok := fm.Get("date"); ok {
		p.Date = Truncate(v.String(), 10)
	}
	if v, ok := fm.Get("tags"); ok {
		p.Tags = normalizeTags(v)
	}
	if v, ok := fm.Get("series"); ok {
		if v.IsList() {
			if items := v.Items(); len(items) > 0 {
				p.Series = items[0]
			}
		} else {
			p.Series = v.String()
		}
	}
	if v, ok := fm.Get("summary"); ok {
		p.Summary = v.String()
	}

	return p
}

// normalizeTags returns list values as they are and splits scalar values on
// commas.
func normalizeTags(v Value) []string {
	if v.IsList() {
		return append([]string{}, v.Items()...)
	}
	parts := strings.Split(v.String(), ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// Truncate returns the first n runes of s. No ellipsis is added.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// SourceFile is the raw content of a post file.
type SourceFile struct {
	Name    string
	Content string
	Hash    string
}

// PostSource lists and reads post files.
type PostSource interface {
	// ListPosts returns post file names, sorted descending.
	// Returns ENOTFOUND if the posts directory does not exist.
	ListPosts(ctx context.Context) ([]string, error)

	// ReadPost returns the content of the named post.
	// Returns EINVALID if the content is not valid UTF-8.
	ReadPost(ctx context.Context, name string) (*SourceFile, error)
}
