package chatsanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_SpansCoverInput(t *testing.T) {
	in := `ab<b>c</b><br/>&amp;d <i class="x">e`
	toks := tokenize(in)

	var rebuilt strings.Builder
	offset := 0
	for _, tok := range toks {
		assert.Equal(t, offset, tok.offset)
		rebuilt.WriteString(tok.raw)
		offset += len(tok.raw)
	}
	assert.Equal(t, in, rebuilt.String())
}

func TestTokenize_Kinds(t *testing.T) {
	toks := tokenize("ab<b>c</b><br/>d")
	require.Len(t, toks, 6)
	assert.Equal(t, textToken, toks[0].kind)
	assert.Equal(t, openTagToken, toks[1].kind)
	assert.Equal(t, "b", toks[1].name)
	assert.Equal(t, textToken, toks[2].kind)
	assert.Equal(t, closeTagToken, toks[3].kind)
	assert.Equal(t, "b", toks[3].name)
	assert.Equal(t, selfClosingToken, toks[4].kind)
	assert.Equal(t, "br", toks[4].name)
	assert.Equal(t, textToken, toks[5].kind)
}

func TestTokenize_TextDecoded(t *testing.T) {
	toks := tokenize("&amp; &#65; &unknown;")
	require.Len(t, toks, 1)
	assert.Equal(t, "& A &unknown;", toks[0].data)
	assert.Equal(t, "&amp; &#65; &unknown;", toks[0].raw)
}

func TestTokenize_NamesLowercased(t *testing.T) {
	toks := tokenize("<B CLASS='x'>y</B>")
	require.Len(t, toks, 3)
	assert.Equal(t, "b", toks[0].name)
	require.Len(t, toks[0].attrs, 1)
	assert.Equal(t, "class", toks[0].attrs[0].Key)
	assert.Equal(t, "x", toks[0].attrs[0].Val)
	assert.Equal(t, "b", toks[2].name)
}

func TestTokenize_AttributeValuesDecoded(t *testing.T) {
	toks := tokenize(`<a href="&#106;avascript:x">`)
	require.Len(t, toks, 1)
	require.Len(t, toks[0].attrs, 1)
	assert.Equal(t, "javascript:x", toks[0].attrs[0].Val)
}

func TestTokenize_RawTextContent(t *testing.T) {
	// Inside script the markup is character data, not tags.
	toks := tokenize("<script>if (a<b) {}</script>")
	require.Len(t, toks, 3)
	assert.Equal(t, openTagToken, toks[0].kind)
	assert.Equal(t, "script", toks[0].name)
	assert.Equal(t, textToken, toks[1].kind)
	assert.Equal(t, "if (a<b) {}", toks[1].data)
	assert.Equal(t, closeTagToken, toks[2].kind)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, tokenize(""))
}
