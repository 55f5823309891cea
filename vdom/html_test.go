package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// TestPre_ContentIsLiteral verifies that markup inside a <pre> node is
// rendered as visible text rather than parsed.
func TestPre_ContentIsLiteral(t *testing.T) {
	out, err := RenderString(Pre("<b>x</b>\nline2"))
	require.NoError(t, err)
	assert.Equal(t, "<pre>&lt;b&gt;x&lt;/b&gt;\nline2</pre>", out)
}

func TestToHTML_Structure(t *testing.T) {
	n := Div(map[string]any{"class": "v-label", "id": 7, "hidden": false, "draggable": true},
		Span(nil, Text("a")),
		Text("b"),
	)

	node := ToHTML(n)
	require.NotNil(t, node)
	assert.Equal(t, html.ElementNode, node.Type)
	assert.Equal(t, "div", node.Data)
	assert.Equal(t, []html.Attribute{
		{Key: "class", Val: "v-label"},
		{Key: "draggable"},
		{Key: "id", Val: "7"},
	}, node.Attr)

	out, err := RenderString(n)
	require.NoError(t, err)
	assert.Equal(t, `<div class="v-label" draggable="" id="7"><span>a</span>b</div>`, out)
}

func TestToHTML_Nil(t *testing.T) {
	assert.Nil(t, ToHTML(nil))
	out, err := RenderString(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
