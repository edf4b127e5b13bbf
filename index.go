package postindex

import (
	"context"
	"io"
	"sort"
)

// Group is a named bucket of posts, such as a tag or a series.
type Group struct {
	Name  string
	Posts []*Post
}

// Filenames returns the file names of the group's posts in bucket order.
func (g *Group) Filenames() []string {
	names := make([]string, 0, len(g.Posts))
	for _, p := range g.Posts {
		names = append(names, p.Filename)
	}
	return names
}

// Groups is a mapping from group name to posts that remembers the order in
// which names were first added.
type Groups struct {
	groups []*Group
	byName map[string]*Group
}

// NewGroups returns an empty Groups.
func NewGroups() *Groups {
	return &Groups{byName: make(map[string]*Group)}
}

// Add appends p to the named group, creating the group if needed.
func (g *Groups) Add(name string, p *Post) {
	group, ok := g.byName[name]
	if !ok {
		group = &Group{Name: name}
		g.byName[name] = group
		g.groups = append(g.groups, group)
	}
	group.Posts = append(group.Posts, p)
}

// Get returns the named group or nil.
func (g *Groups) Get(name string) *Group {
	return g.byName[name]
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.groups)
}

// All returns the groups in insertion order.
func (g *Groups) All() []*Group {
	return g.groups
}

// Sorted returns the groups ordered by name ascending.
func (g *Groups) Sorted() []*Group {
	sorted := append([]*Group(nil), g.groups...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// Index holds the collected posts and their tag and series groupings.
type Index struct {
	Posts  []*Post
	Tags   *Groups
	Series *Groups
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		Posts:  []*Post{},
		Tags:   NewGroups(),
		Series: NewGroups(),
	}
}

// Add appends p to the index. A post is added to every non-empty tag, once
// per occurrence, and to its series if it has one.
func (idx *Index) Add(p *Post) {
	idx.Posts = append(idx.Posts, p)

	for _, tag := range p.Tags {
		if tag != "" {
			idx.Tags.Add(tag, p)
		}
	}

	if p.Series != "" {
		idx.Series.Add(p.Series, p)
	}
}

// TimestampLayout is the format of Snapshot.GeneratedAt.
const TimestampLayout = "2006-01-02 15:04"

// Snapshot is the result of one indexing run. Every output of a run renders
// the same Snapshot so they share one timestamp.
type Snapshot struct {
	GeneratedAt string
	Index       *Index
}

// Renderer renders a snapshot into an output format.
type Renderer interface {
	Render(w io.Writer, snap *Snapshot) error
}

// FileWriter replaces output files.
type FileWriter interface {
	// WriteFile replaces the file at path with data, creating parent
	// directories as needed.
	WriteFile(ctx context.Context, path string, data []byte) error
}

// CatalogService stores a snapshot for downstream tooling.
type CatalogService interface {
	// ReplaceCatalog discards the stored catalog and stores snap.
	ReplaceCatalog(ctx context.Context, snap *Snapshot) error
}
