// Package markdown renders the human-readable post index.
package markdown

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fwojciec/postindex"
)

// Truncation and list limits of the rendered index.
const (
	TableTitleLen = 40
	ListTitleLen  = 50
	TableTags     = 5
	TableKeywords = 3
)

// Labels holds the fixed text of the rendered index.
type Labels struct {
	Title         string
	DoNotEdit     string
	UpdatedPrefix string
	// AllPosts is a format string receiving the post count.
	AllPosts    string
	TableHeader string
	TableRule   string
	ByTag       string
	Series      string
}

// English labels. This is the default.
var English = Labels{
	Title:         "Post Index",
	DoNotEdit:     "Auto-generated. Do not edit by hand.",
	UpdatedPrefix: "Last updated:",
	AllPosts:      "All Posts (%d)",
	TableHeader:   "| File | Title | Date | Tags | Keywords |",
	TableRule:     "|------|------|------|------|--------|",
	ByTag:         "By Tag",
	Series:        "Series",
}

// Korean labels.
var Korean = Labels{
	Title:         "포스트 인덱스",
	DoNotEdit:     "자동 생성됨. 수동 편집 금지.",
	UpdatedPrefix: "마지막 갱신:",
	AllPosts:      "전체 포스트 (%d개)",
	TableHeader:   "| 파일 | 제목 | 날짜 | 태그 | 키워드 |",
	TableRule:     "|------|------|------|------|--------|",
	ByTag:         "태그별 분류",
	Series:        "시리즈",
}

// LabelsFor returns the labels for a locale name ("en" or "ko").
func LabelsFor(locale string) (Labels, error) {
	switch locale {
	case "", "en":
		return English, nil
	case "ko":
		return Korean, nil
	default:
		return Labels{}, postindex.Errorf(postindex.EINVALID, "unsupported locale %q", locale)
	}
}

// Ensure Renderer implements postindex.Renderer at compile time.
var _ postindex.Renderer = (*Renderer)(nil)

// Renderer renders a snapshot as a markdown document.
type Renderer struct {
	Labels Labels
}

// NewRenderer creates a new Renderer.
func NewRenderer(labels Labels) *Renderer {
	return &Renderer{Labels: labels}
}

// Render writes the index. Lines are separated by "\n" and the document has
// no trailing newline.
func (r *Renderer) Render(w io.Writer, snap *postindex.Snapshot) error {
	_, err := io.WriteString(w, strings.Join(r.lines(snap), "\n"))
	return err
}

func (r *Renderer) lines(snap *postindex.Snapshot) []string {
	l := r.Labels
	idx := snap.Index

	lines := []string{
		"# " + l.Title,
		"",
		"> " + l.DoNotEdit,
		"> " + l.UpdatedPrefix + " " + snap.GeneratedAt,
		"",
		"## " + fmt.Sprintf(l.AllPosts, len(idx.Posts)),
		"",
		l.TableHeader,
		l.TableRule,
	}

	for _, p := range idx.Posts {
		lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s | %s |",
			p.Filename,
			postindex.Truncate(p.Title, TableTitleLen),
			p.Date,
			strings.Join(head(p.Tags, TableTags), ", "),
			strings.Join(head(p.Keywords, TableKeywords), ", "),
		))
	}

	lines = append(lines, "", "## "+l.ByTag, "")
	for _, g := range idx.Tags.Sorted() {
		lines = append(lines, "### "+g.Name)
		lines = appendItems(lines, g.Posts)
		lines = append(lines, "")
	}

	if idx.Series.Len() > 0 {
		lines = append(lines, "## "+l.Series, "")
		for _, g := range idx.Series.Sorted() {
			posts := append([]*postindex.Post(nil), g.Posts...)
			sort.SliceStable(posts, func(i, j int) bool {
				return posts[i].Date < posts[j].Date
			})

			lines = append(lines, "### "+g.Name)
			lines = appendItems(lines, posts)
			lines = append(lines, "")
		}
	}

	return lines
}

func appendItems(lines []string, posts []*postindex.Post) []string {
	for _, p := range posts {
		lines = append(lines, "- "+p.Filename+" - "+postindex.Truncate(p.Title, ListTitleLen))
	}
	return lines
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
