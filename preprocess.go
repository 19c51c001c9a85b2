package chatsanitizer

import "regexp"

var (
	// commentRegexp matches HTML comments, including an unterminated
	// comment running to end of input.
	commentRegexp = regexp.MustCompile(`<!--[\s\S]*?(-->|$)`)

	// lineBreakRegexp matches every spelling of the line break tag.
	lineBreakRegexp = regexp.MustCompile(`(?i)<br\s*/?\s*>`)

	// truncatedTagRegexp matches a tag opened at end of input that is
	// never terminated, typically the tail of a cut-off stream chunk.
	truncatedTagRegexp = regexp.MustCompile(`</?[A-Za-z][^<>]*$`)
)

// preprocess removes comments, removes a truncated trailing tag, and
// normalizes the line break tag to its canonical <br/> spelling. Total
// over all inputs, including the empty string.
func preprocess(s string) string {
	s = commentRegexp.ReplaceAllString(s, "")
	s = lineBreakRegexp.ReplaceAllString(s, "<br/>")
	s = truncatedTagRegexp.ReplaceAllString(s, "")
	return s
}
