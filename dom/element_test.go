package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-uidl/vdom"
)

func TestElement_SetTextEscapes(t *testing.T) {
	el := NewElement("div", "v-label")
	el.SetText("<b>hi</b>")

	assert.Equal(t, "<b>hi</b>", el.Text())
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", el.HTML())
	assert.Equal(t, 1, el.ChildCount())
	assert.Equal(t, `<div class="v-label">&lt;b&gt;hi&lt;/b&gt;</div>`, el.OuterHTML())
}

func TestElement_SetHTMLParses(t *testing.T) {
	el := NewElement("div", "")
	el.SetHTML("<b>hi</b> there")

	assert.Equal(t, "hi there", el.Text())
	assert.Equal(t, "<b>hi</b> there", el.HTML())
	assert.Equal(t, 2, el.ChildCount())
}

func TestElement_SettersReplaceContent(t *testing.T) {
	el := NewElement("div", "")
	el.SetHTML("<i>old</i>")
	el.SetText("new")
	assert.Equal(t, "new", el.HTML())

	el.SetHTML("<u>newer</u>")
	assert.Equal(t, "<u>newer</u>", el.HTML())

	el.SetText("")
	assert.Equal(t, 0, el.ChildCount())
	assert.Equal(t, 4, el.Mutations())
}

func TestElement_AppendChildKeepsContent(t *testing.T) {
	el := NewElement("div", "")
	el.SetText("a")
	el.AppendChild(vdom.Pre("b"))

	assert.Equal(t, "a<pre>b</pre>", el.HTML())
}

func TestElement_Images(t *testing.T) {
	el := NewElement("div", "")
	el.SetHTML(`<p><img src="a.png"></p><img src="b.png">`)

	images := el.Images()
	require.Len(t, images, 2)
	assert.Equal(t, "a.png", images[0].Src())
	assert.Equal(t, "b.png", images[1].Src())

	// The same element yields the same handle across scans.
	assert.Same(t, images[0], el.Images()[0])

	fired, released := 0, 0
	images[0].OnLoad(func() { fired++ })
	release := images[1].OnLoad(func() { released++ })
	release()
	release()
	assert.Equal(t, 0, images[1].(*MemImage).Watched())
	assert.Equal(t, 2, el.FireImageLoads())
	assert.Equal(t, 1, fired)
	assert.True(t, images[0].(*MemImage).Loaded())
	assert.Equal(t, 0, released)

	// Handlers run once.
	el.FireImageLoads()
	assert.Equal(t, 1, fired)
}

func TestElement_ReplacingContentDropsImages(t *testing.T) {
	el := NewElement("div", "")
	el.SetHTML(`<img src="a.png">`)
	require.Len(t, el.Images(), 1)

	el.SetText("no images")
	assert.Empty(t, el.Images())
}
