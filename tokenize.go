package chatsanitizer

import (
	"strings"

	"golang.org/x/net/html"
)

type tokenKind int

const (
	textToken tokenKind = iota
	openTagToken
	closeTagToken
	selfClosingToken
)

// token is one item of the scan: a literal text run or a single tag.
// raw holds the exact source bytes and offset their position in the
// preprocessed input, so a disallowed tag can be escaped verbatim.
type token struct {
	kind   tokenKind
	data   string // entity-decoded character data (textToken only)
	name   string // lowercased tag name (tag tokens only)
	attrs  []html.Attribute
	raw    string
	offset int
}

// tokenize scans s left to right into a token stream. It uses the
// x/net tokenizer, which yields tags faithfully without the tree
// repair html.Parse would perform; the rebalancer applies its own
// repair rules with a defined order instead. Comment and doctype
// tokens yield nothing (the preprocessor strips comments before this
// runs). Raw spans of the emitted tokens concatenate to exactly the
// scanned input, comment/doctype spans aside.
func tokenize(s string) []token {
	z := html.NewTokenizer(strings.NewReader(s))
	var toks []token
	offset := 0
	for {
		tt := z.Next()
		// Copy before Token/Text, which rewrite the buffer in place.
		raw := string(z.Raw())
		switch tt {
		case html.ErrorToken:
			// Only io.EOF is possible when reading from a string.
			return toks
		case html.TextToken:
			toks = append(toks, token{
				kind:   textToken,
				data:   string(z.Text()),
				raw:    raw,
				offset: offset,
			})
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			t := z.Token()
			kind := openTagToken
			switch tt {
			case html.EndTagToken:
				kind = closeTagToken
			case html.SelfClosingTagToken:
				kind = selfClosingToken
			}
			toks = append(toks, token{
				kind:   kind,
				name:   t.Data,
				attrs:  t.Attr,
				raw:    raw,
				offset: offset,
			})
		}
		offset += len(raw)
	}
}
