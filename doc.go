// Package chatsanitizer sanitizes and rebalances markup for chat
// renderers that accept a small fixed subset of HTML.
//
// # Overview
//
// Upstream producers (AI completion streams, search-result
// formatters, markup converters) emit text that may contain
// disallowed tags, unbalanced or illegally nested tags, unsafe URLs,
// or leftover artifacts from earlier passes. Passing that text to the
// rendering API unmodified gets the whole message rejected, or worse,
// becomes an injection vector. Rather than rejecting malformed input,
// chatsanitizer repairs it deterministically: the output is always
// structurally valid, and the content degrades gracefully instead of
// being lost.
//
// The transform runs as a pipeline: a preprocessor strips comments,
// truncated trailing tags, and normalizes line breaks; a tokenizer
// (built on golang.org/x/net/html) scans the text once into literal
// runs and tag tokens; a rebalancer consumes the stream with an
// explicit stack of open tags, enforcing nesting legality and closing
// everything left open at end of input; and a postprocessor applies
// cosmetic fix-ups such as rewriting the spoiler alias tag.
//
// # Configuration
//
// A [Config] controls:
//   - Which tags are allowed ([Config.AllowedTags])
//   - Whether unknown tags are dropped or escaped ([Config.UnknownTags])
//   - Whether quotes may carry the collapsible marker ([Config.ExpandableQuote])
//   - Category assignments for caller-added tags ([Config.TagCategories])
//
// Two built-in configurations are provided:
//   - [DefaultConfig] — the renderer's full tag vocabulary.
//   - [StrictConfig] — basic inline formatting only, for titles and
//     previews.
//
// Attribute policy is fixed per tag: links keep a validated href,
// preformatted blocks keep a bounded language hint, quotes keep the
// collapsible marker when enabled, and everything else keeps at most
// identifier-safe id/class values.
//
// # Guarantees
//
// For any input and any configuration the output satisfies:
//   - Only allowed tag names appear, live, in the output.
//   - Every open tag has a matching close; pairs never cross.
//   - A hyperlink never contains another hyperlink.
//   - A block container never sits inside an inline span.
//   - Every retained URL uses an http, https, mailto, or tel scheme.
//   - Sanitizing twice gives the same result as sanitizing once.
//
// Neither [Sanitize] nor [ExtractPlainText] can fail: there is no
// error return and no input that panics.
//
// # Thread Safety
//
// All transforms are pure functions over their arguments. Package
// state is limited to compiled patterns and lookup tables that are
// never written after initialization, so concurrent calls are safe
// without locks. A Config must not be mutated while a call using it
// is in flight.
//
// # Example
//
//	clean := chatsanitizer.Sanitize(streamChunk, nil)
package chatsanitizer
