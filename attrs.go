package chatsanitizer

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// PlaceholderURL is the harmless href substituted for any URL value
// that fails validation. The host is reserved by RFC 2606 and can
// never resolve.
const PlaceholderURL = "https://invalid.example"

// maxLanguageHint bounds the length of the language attribute on
// preformatted blocks.
const maxLanguageHint = 20

// allowedSchemes lists the URL schemes permitted in href values.
var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// schemeRegexp matches an explicit URL scheme prefix.
var schemeRegexp = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// sanitizeAttrs filters raw attributes down to the tag's fixed policy.
// Duplicate keys are deduplicated first-occurrence-wins. Values are
// validated (URLs) or character-restricted (identifiers, language
// hints); attributes whose value filters down to nothing are dropped.
func sanitizeAttrs(name string, attrs []html.Attribute, cc *compiledConfig) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	var out []html.Attribute
	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if seen[key] {
			continue
		}
		seen[key] = true

		switch name {
		case "a":
			// Hyperlinks carry only a validated href.
			if key == "href" {
				out = append(out, html.Attribute{Key: "href", Val: normalizeURL(a.Val)})
			}
		case "pre":
			// Preformatted blocks carry only a bounded language hint.
			if key == "language" {
				if v := truncate(identifierFilter(a.Val), maxLanguageHint); v != "" {
					out = append(out, html.Attribute{Key: "language", Val: v})
				}
			}
		case "blockquote":
			// Quotes carry only the valueless collapsible marker,
			// and only when the configuration enables it.
			if key == "expandable" && a.Val == "" && cc.expandableQuote {
				out = append(out, html.Attribute{Key: "expandable"})
			}
		case "code", "tg-spoiler", "br":
			// No attributes permitted.
		default:
			if key == "id" || key == "class" {
				if v := identifierFilter(a.Val); v != "" {
					out = append(out, html.Attribute{Key: key, Val: v})
				}
			}
		}
	}
	return out
}

// identifierFilter keeps letters, digits, underscore, and hyphen.
func identifierFilter(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_', r == '-':
			return r
		}
		return -1
	}, s)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// normalizeURL validates and canonicalizes a URL-valued attribute.
// Values without an explicit scheme get https; protocol-relative
// values keep their host with https. The scheme must be on the
// allowlist, the fragment is stripped, and trailing slashes are
// removed. The result is a fixpoint: normalizing it again changes
// nothing, so repeated sanitization cannot drift. Any value that
// cannot be made safe yields PlaceholderURL, never an error.
func normalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return PlaceholderURL
	}
	switch {
	case strings.HasPrefix(s, "//"):
		s = "https:" + s
	case !schemeRegexp.MatchString(s):
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return PlaceholderURL
	}
	if !allowedSchemes[strings.ToLower(u.Scheme)] {
		return PlaceholderURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	return strings.TrimRight(u.String(), "/")
}
