package chatsanitizer

import (
	"regexp"
	"strings"
)

// redundantBreakRegexp matches line breaks sitting directly before a
// closing block tag, where the renderer already breaks the line.
var redundantBreakRegexp = regexp.MustCompile(`(?:<br/>)+(</(?:pre|blockquote)>)`)

// postprocess applies cosmetic fix-ups to the rebalanced output: the
// spoiler alias becomes the renderer's real styled span, and redundant
// line breaks at block boundaries are removed. Pairwise rewrites only,
// so the structural invariants of the rebalancer are preserved.
func postprocess(s string) string {
	s = strings.ReplaceAll(s, "<tg-spoiler>", `<span class="tg-spoiler">`)
	s = strings.ReplaceAll(s, "</tg-spoiler>", "</span>")
	s = redundantBreakRegexp.ReplaceAllString(s, "$1")
	return s
}
