package chatsanitizer

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	tagRegexp        = regexp.MustCompile(`</?[A-Za-z][^>]*>`)
	spaceRunRegexp   = regexp.MustCompile(`[ \t]+`)
	newlineRunRegexp = regexp.MustCompile(`\n{3,}`)
)

// ExtractPlainText returns the human-readable text of input with all
// markup removed: the input is sanitized, line breaks become newlines,
// remaining tags are stripped, entities are decoded, whitespace runs
// are collapsed, and the result is trimmed. Like Sanitize it is total
// and never fails. A nil cfg means DefaultConfig().
func ExtractPlainText(input string, cfg *Config) string {
	s := Sanitize(input, cfg)
	s = strings.ReplaceAll(s, "<br/>", "\n")
	s = tagRegexp.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = spaceRunRegexp.ReplaceAllString(s, " ")
	s = newlineRunRegexp.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
