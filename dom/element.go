package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vcrobe/nojs-uidl/vdom"
)

// Compile-time assertion to ensure Element implements Target.
var _ Target = (*Element)(nil)

// Element is an in-memory Target. It keeps its content as an
// x/net/html tree, which makes it usable for server-side rendering and
// for tests without a browser.
//
// Element is not safe for concurrent use; like a DOM node it belongs to
// a single update loop.
type Element struct {
	node      *html.Node
	images    map[*html.Node]*MemImage
	mutations int
}

// NewElement creates a detached element. class may be empty.
func NewElement(tag, class string) *Element {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return &Element{node: n, images: make(map[*html.Node]*MemImage)}
}

// Node returns the underlying html node.
func (e *Element) Node() *html.Node {
	return e.node
}

// SetText replaces the content with a single text node.
func (e *Element) SetText(text string) {
	e.mutations++
	e.clear()
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// SetHTML replaces the content with markup parsed in the element's context.
func (e *Element) SetHTML(markup string) {
	e.mutations++
	e.clear()
	if markup == "" {
		return
	}
	// Reading from a strings.Reader cannot fail, and the HTML5 parser
	// recovers from malformed markup the way a browser does.
	nodes, _ := html.ParseFragment(strings.NewReader(markup), e.node)
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
}

// AppendChild adds n after the current content.
func (e *Element) AppendChild(n *vdom.VNode) {
	e.mutations++
	if child := vdom.ToHTML(n); child != nil {
		e.node.AppendChild(child)
	}
}

func (e *Element) clear() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.images = make(map[*html.Node]*MemImage)
}

// Text returns the concatenated text of every descendant, like textContent.
func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
				continue
			}
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}

// HTML returns the serialized content, like innerHTML.
func (e *Element) HTML() string {
	var sb strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		// strings.Builder never returns a write error.
		_ = html.Render(&sb, c)
	}
	return sb.String()
}

// OuterHTML returns the element itself with its content.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	_ = html.Render(&sb, e.node)
	return sb.String()
}

// ChildCount returns the number of direct children.
func (e *Element) ChildCount() int {
	count := 0
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

// Mutations returns how many content-changing calls the element has received.
func (e *Element) Mutations() int {
	return e.mutations
}

// Images returns the <img> descendants in document order.
func (e *Element) Images() []Image {
	var out []Image
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Img {
				img, ok := e.images[c]
				if !ok {
					img = &MemImage{node: c}
					e.images[c] = img
				}
				out = append(out, img)
			}
			walk(c)
		}
	}
	walk(e.node)
	return out
}

// FireImageLoads settles every image currently under the element, the
// way a browser would once the resources arrive. It returns the number
// of images fired.
func (e *Element) FireImageLoads() int {
	images := e.Images()
	for _, img := range images {
		img.(*MemImage).Load()
	}
	return len(images)
}

// MemImage is an <img> inside an Element.
type MemImage struct {
	node     *html.Node
	handlers []loadHandler
	nextID   int
	loaded   bool
}

type loadHandler struct {
	id int
	fn func()
}

// Src returns the image's src attribute.
func (m *MemImage) Src() string {
	for _, a := range m.node.Attr {
		if a.Key == "src" {
			return a.Val
		}
	}
	return ""
}

// OnLoad registers fn. Handlers registered after a Load wait for the next one.
func (m *MemImage) OnLoad(fn func()) func() {
	m.nextID++
	id := m.nextID
	m.handlers = append(m.handlers, loadHandler{id: id, fn: fn})
	return func() {
		for i, h := range m.handlers {
			if h.id == id {
				m.handlers = append(m.handlers[:i], m.handlers[i+1:]...)
				return
			}
		}
	}
}

// Load marks the image loaded and runs the pending handlers once.
func (m *MemImage) Load() {
	m.loaded = true
	handlers := m.handlers
	m.handlers = nil
	for _, h := range handlers {
		h.fn()
	}
}

// Loaded reports whether Load has been called.
func (m *MemImage) Loaded() bool {
	return m.loaded
}

// Watched returns the number of handlers waiting for the next Load.
func (m *MemImage) Watched() int {
	return len(m.handlers)
}
