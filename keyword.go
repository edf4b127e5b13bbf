package postindex

import (
	"regexp"
	"strings"
)

// MaxKeywords is the number of headings kept as keywords per post.
const MaxKeywords = 5

// keywordRe matches level-2 headings: exactly "## " at the start of a line.
var keywordRe = regexp.MustCompile(`(?m)^## (.+)$`)

// ExtractKeywords returns the text of the first n level-2 headings in
// document order. Headings are matched anywhere in the text, including
// fenced code.
func ExtractKeywords(text string, n int) []string {
	keywords := []string{}
	if n <= 0 {
		return keywords
	}

	for _, match := range keywordRe.FindAllStringSubmatch(text, n) {
		keywords = append(keywords, strings.TrimSpace(match[1]))
	}

	return keywords
}
