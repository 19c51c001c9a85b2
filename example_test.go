package chatsanitizer_test

import (
	"fmt"

	"github.com/njchilds90/chatsanitizer"
)

func ExampleSanitize() {
	input := `<b>bold<i>both</b>italic</i>`
	fmt.Println(chatsanitizer.Sanitize(input, nil))
	// Output: <b>bold<i>both</i></b>italic
}

func ExampleSanitize_unknownTags() {
	cfg := chatsanitizer.DefaultConfig()
	cfg.UnknownTags = chatsanitizer.EscapeUnknown
	fmt.Println(chatsanitizer.Sanitize("<marquee>hi</marquee>", cfg))
	// Output: &lt;marquee&gt;hi&lt;/marquee&gt;
}

func ExampleSanitize_links() {
	input := `<a href="example.com/docs/">read</a>`
	fmt.Println(chatsanitizer.Sanitize(input, nil))
	// Output: <a href="https://example.com/docs">read</a>
}

func ExampleSanitize_expandableQuote() {
	cfg := chatsanitizer.DefaultConfig()
	cfg.ExpandableQuote = true
	input := "<blockquote expandable>a long history</blockquote>"
	fmt.Println(chatsanitizer.Sanitize(input, cfg))
	// Output: <blockquote expandable>a long history</blockquote>
}

func ExampleExtractPlainText() {
	input := `<b>Hello</b> <a href="https://example.com">world</a><br>bye`
	fmt.Println(chatsanitizer.ExtractPlainText(input, nil))
	// Output:
	// Hello world
	// bye
}
