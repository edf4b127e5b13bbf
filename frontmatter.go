package postindex

import (
	"regexp"
	"strings"
)

// frontMatterRe matches a leading block fenced by "---" lines. The closing
// fence only has to start a line, so "----" closes the block too.
var frontMatterRe = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---`)

// Value is a front matter value: either a scalar string or a list parsed
// from bracket syntax.
type Value struct {
	scalar string
	list   []string
	isList bool
}

// Scalar returns a scalar Value.
func Scalar(s string) Value {
	return Value{scalar: s}
}

// List returns a list Value.
func List(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{list: items, isList: true}
}

// IsList reports whether the value was written as a bracketed list.
func (v Value) IsList() bool { return v.isList }

// String returns the scalar, or the list items joined with ", ".
func (v Value) String() string {
	if v.isList {
		return strings.Join(v.list, ", ")
	}
	return v.scalar
}

// Items returns the list items, or the scalar as a one-element slice.
func (v Value) Items() []string {
	if v.isList {
		return v.list
	}
	return []string{v.scalar}
}

// FrontMatter maps front matter keys to their values.
type FrontMatter map[string]Value

// Get returns the value for key and whether it was present.
func (fm FrontMatter) Get(key string) (Value, bool) {
	v, ok := fm[key]
	return v, ok
}

// ExtractFrontMatter parses the leading front matter block of a post.
//
// Only "key: value" lines are understood; this is not a YAML parser. Text
// without a block yields an empty FrontMatter. A value wrapped in brackets
// becomes a list. Later duplicate keys overwrite earlier ones.
func ExtractFrontMatter(text string) FrontMatter {
	fm := FrontMatter{}

	match := frontMatterRe.FindStringSubmatch(text)
	if match == nil {
		return fm
	}

	for _, line := range strings.Split(match[1], "\n") {
		key, raw, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		value := unquote(raw)
		if len(value) >= 2 && strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
			parts := strings.Split(value[1:len(value)-1], ",")
			items := make([]string, 0, len(parts))
			for _, p := range parts {
				items = append(items, unquote(p))
			}
			fm[unquote(key)] = List(items...)
			continue
		}

		fm[unquote(key)] = Scalar(value)
	}

	return fm
}

// unquote trims whitespace, then runs of double quotes, then runs of single
// quotes from both ends.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.Trim(s, "'")
}
