package chatsanitizer

import "strings"

// TagCategory classifies how a tag participates in nesting rules.
type TagCategory int

const (
	// CategoryInline marks span-style tags (emphasis, links, inline
	// code). Inline tags may nest inside block tags and each other.
	CategoryInline TagCategory = iota

	// CategoryBlock marks container tags (quotes, preformatted
	// blocks). Block tags are top level: they may not appear inside
	// an inline span or inside another block container.
	CategoryBlock

	// CategorySelfClosing marks tags with no content and no closing
	// tag, such as the line break. They bypass stack tracking.
	CategorySelfClosing
)

// UnknownTagPolicy controls what happens to tags outside the allowed set.
type UnknownTagPolicy int

const (
	// DropUnknown removes disallowed tags from the output entirely.
	// The character data of non-rendering containers (script, style)
	// is removed along with the tags; for all other tags only the
	// tags themselves disappear and their content is kept.
	DropUnknown UnknownTagPolicy = iota

	// EscapeUnknown keeps a disallowed tag's literal source text in
	// the output as escaped plain text, so the reader sees the
	// markup the producer emitted instead of silently losing it.
	EscapeUnknown
)

// Config defines what markup is considered safe. The zero value allows
// nothing; start from DefaultConfig or StrictConfig. A Config must not
// be mutated while a transform that uses it is running.
type Config struct {
	// AllowedTags is the list of tag names kept in output. Names are
	// compared case-insensitively.
	AllowedTags []string

	// UnknownTags selects how disallowed tags are handled.
	UnknownTags UnknownTagPolicy

	// ExpandableQuote enables the valueless "expandable" marker on
	// blockquote tags. When false the marker is stripped.
	ExpandableQuote bool

	// TagCategories assigns categories to tags beyond the built-in
	// table, for callers that extend AllowedTags. Entries here win
	// over the built-in table; listing a tag does not implicitly
	// allow it. An allowed tag with no category is treated as inline.
	TagCategories map[string]TagCategory
}

// DefaultConfig returns a Config covering the chat renderer's full tag
// vocabulary: inline formatting, spoilers, links, inline code,
// preformatted blocks, quotes, and line breaks. Unknown tags are
// dropped.
func DefaultConfig() *Config {
	return &Config{
		AllowedTags: []string{
			"b", "strong", "i", "em", "u", "ins", "s", "strike", "del",
			"span", "tg-spoiler",
			"a",
			"code", "pre",
			"blockquote",
			"br",
		},
	}
}

// StrictConfig returns a Config that allows only basic inline
// formatting with no links, spoilers, or block containers — suitable
// for single-line contexts such as titles and previews.
func StrictConfig() *Config {
	return &Config{
		AllowedTags: []string{"b", "strong", "i", "em", "u", "s", "code", "br"},
	}
}

// baseCategories is the built-in tag classification. Read-only after
// initialization; safe to share across concurrent calls.
var baseCategories = map[string]TagCategory{
	"b":          CategoryInline,
	"strong":     CategoryInline,
	"i":          CategoryInline,
	"em":         CategoryInline,
	"u":          CategoryInline,
	"ins":        CategoryInline,
	"s":          CategoryInline,
	"strike":     CategoryInline,
	"del":        CategoryInline,
	"span":       CategoryInline,
	"tg-spoiler": CategoryInline,
	"a":          CategoryInline,
	"code":       CategoryInline,
	"pre":        CategoryBlock,
	"blockquote": CategoryBlock,
	"br":         CategorySelfClosing,
}

// nonNestingTags may never contain another instance of themselves.
var nonNestingTags = map[string]bool{
	"a": true,
}

// rawTextTags are non-rendering containers whose character data is
// dropped along with the tags under DropUnknown.
var rawTextTags = map[string]bool{
	"script": true,
	"style":  true,
}

// compiledConfig is the per-call lookup form of a Config.
type compiledConfig struct {
	unknownTags     UnknownTagPolicy
	expandableQuote bool
	allowed         map[string]bool
	categories      map[string]TagCategory
}

func (c *Config) compile() *compiledConfig {
	cc := &compiledConfig{
		unknownTags:     c.UnknownTags,
		expandableQuote: c.ExpandableQuote,
		allowed:         make(map[string]bool, len(c.AllowedTags)),
	}
	for _, t := range c.AllowedTags {
		cc.allowed[strings.ToLower(t)] = true
	}
	if len(c.TagCategories) == 0 {
		cc.categories = baseCategories
	} else {
		cc.categories = make(map[string]TagCategory, len(baseCategories)+len(c.TagCategories))
		for name, cat := range baseCategories {
			cc.categories[name] = cat
		}
		for name, cat := range c.TagCategories {
			cc.categories[strings.ToLower(name)] = cat
		}
	}
	return cc
}

// classify reports the category of name and whether it is allowed.
func (cc *compiledConfig) classify(name string) (TagCategory, bool) {
	if !cc.allowed[name] {
		return 0, false
	}
	if cat, ok := cc.categories[name]; ok {
		return cat, true
	}
	return CategoryInline, true
}
