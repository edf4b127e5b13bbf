package json_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fwojciec/postindex"
	pijson "github.com/fwojciec/postindex/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshot(posts ...*postindex.Post) *postindex.Snapshot {
	idx := postindex.NewIndex()
	for _, p := range posts {
		idx.Add(p)
	}
	return &postindex.Snapshot{GeneratedAt: "2024-02-03 04:05", Index: idx}
}

func render(t *testing.T, snap *postindex.Snapshot) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, pijson.NewRenderer().Render(&buf, snap))
	return buf.String()
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders indented document", func(t *testing.T) {
		t.Parallel()

		snap := newSnapshot(&postindex.Post{
			Filename: "2024-02-01-b.md",
			Title:    "Beta",
			Date:     "2024-02-01",
			Tags:     []string{"x"},
			Series:   "intro",
			Summary:  "",
			Keywords: []string{},
		})

		got := render(t, snap)

		want := `{
  "version": "1.0",
  "generated_at": "2024-02-03 04:05",
  "post_count": 1,
  "posts": [
    {
      "filename": "2024-02-01-b.md",
      "title": "Beta",
      "date": "2024-02-01",
      "tags": [
        "x"
      ],
      "series": "intro",
      "summary": "",
      "keywords": []
    }
  ],
  "tags": {
    "x": [
      "2024-02-01-b.md"
    ]
  },
  "series": {
    "intro": [
      "2024-02-01-b.md"
    ]
  }
}`
		assert.Equal(t, want, got)
	})

	t.Run("renders empty index", func(t *testing.T) {
		t.Parallel()

		got := render(t, newSnapshot())

		assert.Contains(t, got, `"post_count": 0`)
		assert.Contains(t, got, `"posts": []`)
		assert.Contains(t, got, `"tags": {}`)
		assert.Contains(t, got, `"series": {}`)
	})

	t.Run("keeps tag keys in insertion order", func(t *testing.T) {
		t.Parallel()

		snap := newSnapshot(
			&postindex.Post{Filename: "b.md", Tags: []string{"zeta", "alpha"}, Keywords: []string{}},
			&postindex.Post{Filename: "a.md", Tags: []string{"mid"}, Keywords: []string{}},
		)

		got := render(t, snap)

		zeta := bytes.Index([]byte(got), []byte(`"zeta": [`))
		alpha := bytes.Index([]byte(got), []byte(`"alpha": [`))
		mid := bytes.Index([]byte(got), []byte(`"mid": [`))
		assert.Less(t, zeta, alpha)
		assert.Less(t, alpha, mid)
	})

	t.Run("lists series in index order rather than by date", func(t *testing.T) {
		t.Parallel()

		snap := newSnapshot(
			&postindex.Post{Filename: "2024-02-01-b.md", Date: "2024-02-01", Series: "s", Tags: []string{}, Keywords: []string{}},
			&postindex.Post{Filename: "2024-01-01-a.md", Date: "2024-01-01", Series: "s", Tags: []string{}, Keywords: []string{}},
		)

		var doc struct {
			Series map[string][]string `json:"series"`
		}
		require.NoError(t, json.Unmarshal([]byte(render(t, snap)), &doc))

		assert.Equal(t, []string{"2024-02-01-b.md", "2024-01-01-a.md"}, doc.Series["s"])
	})

	t.Run("writes non-ASCII and HTML characters literally", func(t *testing.T) {
		t.Parallel()

		snap := newSnapshot(&postindex.Post{
			Filename: "a.md",
			Title:    "한글 <제목> & more",
			Tags:     []string{"c++", "<tag>"},
			Keywords: []string{},
		})

		got := render(t, snap)

		assert.Contains(t, got, `"title": "한글 <제목> & more"`)
		assert.Contains(t, got, `"<tag>": [`)
		assert.NotContains(t, got, `\u`)
	})

	t.Run("writes line and paragraph separators literally", func(t *testing.T) {
		t.Parallel()

		ls, ps := string(rune(0x2028)), string(rune(0x2029))
		snap := newSnapshot(&postindex.Post{
			Filename: "a.md",
			Title:    "a" + ls + "b" + ps + "c",
			Summary:  "sep" + ls + "here",
			Tags:     []string{"x" + ps},
			Keywords: []string{},
		})

		got := render(t, snap)

		assert.Contains(t, got, `"title": "a`+ls+`b`+ps+`c"`)
		assert.Contains(t, got, `"summary": "sep`+ls+`here"`)
		assert.Contains(t, got, `"x`+ps+`": [`)
		assert.NotContains(t, got, `\u`)

		var doc struct {
			Posts []postindex.Post `json:"posts"`
		}
		require.NoError(t, json.Unmarshal([]byte(got), &doc))
		assert.Equal(t, "a"+ls+"b"+ps+"c", doc.Posts[0].Title)
	})

	t.Run("keeps escaped backslashes before u2028 text", func(t *testing.T) {
		t.Parallel()

		snap := newSnapshot(&postindex.Post{
			Filename: "a.md",
			Title:    `lit\u2028`,
			Summary:  `two\\u2029`,
			Tags:     []string{},
			Keywords: []string{},
		})

		got := render(t, snap)

		assert.Contains(t, got, `"title": "lit\\u2028"`)
		assert.Contains(t, got, `"summary": "two\\\\u2029"`)

		var doc struct {
			Posts []postindex.Post `json:"posts"`
		}
		require.NoError(t, json.Unmarshal([]byte(got), &doc))
		assert.Equal(t, `lit\u2028`, doc.Posts[0].Title)
		assert.Equal(t, `two\\u2029`, doc.Posts[0].Summary)
	})

	t.Run("has no trailing newline", func(t *testing.T) {
		t.Parallel()

		got := render(t, newSnapshot())

		assert.Equal(t, byte('}'), got[len(got)-1])
	})
}

func TestNewDocument(t *testing.T) {
	t.Parallel()

	snap := newSnapshot(
		&postindex.Post{Filename: "2024-02-01-b.md", Tags: []string{"x", "y"}},
		&postindex.Post{Filename: "2024-01-01-a.md", Tags: []string{"x"}},
	)

	doc := pijson.NewDocument(snap)

	assert.Equal(t, pijson.Version, doc.Version)
	assert.Equal(t, "2024-02-03 04:05", doc.GeneratedAt)
	assert.Equal(t, 2, doc.PostCount)
	assert.Equal(t, pijson.Filenames{
		{Name: "x", Filenames: []string{"2024-02-01-b.md", "2024-01-01-a.md"}},
		{Name: "y", Filenames: []string{"2024-02-01-b.md"}},
	}, doc.Tags)
	assert.Empty(t, doc.Series)
}
