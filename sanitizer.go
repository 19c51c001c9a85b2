// Package chatsanitizer repairs and sanitizes markup for a chat
// renderer that accepts only a small fixed tag vocabulary with strict
// nesting rules. See doc.go for an overview.
package chatsanitizer

import (
	"strings"

	"golang.org/x/net/html"
)

// stackEntry records one currently open tag. Stack order reflects
// document order of the open tags; the rebalancer never emits
// crossing tag pairs.
type stackEntry struct {
	name     string
	category TagCategory
}

// Sanitize transforms input into markup that satisfies the renderer's
// structural and security constraints: every tag is from the allowed
// set, every open tag has a matching close in legal nesting order,
// attributes are allowlisted per tag, and URL values carry only safe
// schemes. Malformed input is repaired, never rejected: unknown tags
// are dropped or escaped per cfg, dangling openers are auto-closed,
// orphan closers are discarded, and unsafe URLs become a placeholder.
//
// Sanitize is total: it returns a valid result for any input,
// including the empty string and binary-ish text. A nil cfg means
// DefaultConfig(). The result is idempotent under the same cfg.
func Sanitize(input string, cfg *Config) string {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cc := cfg.compile()
	out := rebalance(tokenize(preprocess(input)), cc)
	return postprocess(out)
}

// rebalance consumes the token stream with an explicit stack of open
// tags, enforcing the nesting rules and emitting repaired markup.
func rebalance(toks []token, cc *compiledConfig) string {
	var out strings.Builder
	var stack []stackEntry

	// Name of the raw-text container currently being dropped, if any.
	skipRawText := ""

	for _, tok := range toks {
		switch tok.kind {
		case textToken:
			if skipRawText != "" {
				continue
			}
			out.WriteString(html.EscapeString(tok.data))

		case closeTagToken:
			if skipRawText != "" {
				if tok.name == skipRawText {
					skipRawText = ""
				}
				continue
			}
			if !cc.allowed[tok.name] {
				if cc.unknownTags == EscapeUnknown {
					out.WriteString(html.EscapeString(tok.raw))
				}
				continue
			}
			// Close the topmost matching opener, force-closing
			// everything opened after it. A closer with no matching
			// opener is discarded.
			if i := lastIndex(stack, tok.name); i >= 0 {
				stack = closeFrom(&out, stack, i)
			}

		case openTagToken, selfClosingToken:
			if skipRawText != "" {
				continue
			}
			cat, allowed := cc.classify(tok.name)
			if !allowed {
				if cc.unknownTags == EscapeUnknown {
					out.WriteString(html.EscapeString(tok.raw))
				} else if tok.kind == openTagToken && rawTextTags[tok.name] {
					skipRawText = tok.name
				}
				continue
			}

			attrs := sanitizeAttrs(tok.name, tok.attrs, cc)

			// The renderer rejects anchors without a target. Drop
			// the tag pair and keep the content.
			if tok.name == "a" && len(attrs) == 0 {
				continue
			}

			// A non-nesting tag force-closes an earlier open
			// instance of itself and everything above it.
			if nonNestingTags[tok.name] {
				if i := lastIndex(stack, tok.name); i >= 0 {
					stack = closeFrom(&out, stack, i)
				}
			}

			// Block containers may not sit inside inline spans or
			// other block containers. Close from the shallowest
			// offender up before opening one.
			if cat == CategoryBlock {
				for i, e := range stack {
					if e.category == CategoryInline || e.category == CategoryBlock {
						stack = closeFrom(&out, stack, i)
						break
					}
				}
			}

			if cat == CategorySelfClosing {
				writeTag(&out, tok.name, attrs, true)
				continue
			}
			writeTag(&out, tok.name, attrs, false)
			stack = append(stack, stackEntry{name: tok.name, category: cat})
		}
	}

	// End of input: auto-close everything still open.
	closeFrom(&out, stack, 0)
	return out.String()
}

// lastIndex returns the topmost stack index holding name, or -1.
func lastIndex(stack []stackEntry, name string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].name == name {
			return i
		}
	}
	return -1
}

// closeFrom emits closing tags for stack[i:] from the top down and
// returns the shortened stack.
func closeFrom(out *strings.Builder, stack []stackEntry, i int) []stackEntry {
	for j := len(stack) - 1; j >= i; j-- {
		out.WriteString("</")
		out.WriteString(stack[j].name)
		out.WriteByte('>')
	}
	return stack[:i]
}

// writeTag emits an open or self-closing tag with its surviving
// attributes. Empty-valued attributes are written bare.
func writeTag(out *strings.Builder, name string, attrs []html.Attribute, selfClosing bool) {
	out.WriteByte('<')
	out.WriteString(name)
	for _, a := range attrs {
		out.WriteByte(' ')
		out.WriteString(a.Key)
		if a.Val != "" {
			out.WriteString(`="`)
			out.WriteString(html.EscapeString(a.Val))
			out.WriteByte('"')
		}
	}
	if selfClosing {
		out.WriteString("/>")
		return
	}
	out.WriteByte('>')
}
