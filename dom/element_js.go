//go:build js || wasm
// +build js wasm

package dom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-uidl/vdom"
)

// Compile-time assertion to ensure JSElement implements Target.
var _ Target = (*JSElement)(nil)

// JSElement is a Target backed by a live browser element.
type JSElement struct {
	el js.Value
}

// NewJSElement wraps a DOM element.
func NewJSElement(el js.Value) *JSElement {
	return &JSElement{el: el}
}

// Value returns the wrapped DOM element.
func (e *JSElement) Value() js.Value {
	return e.el
}

// SetText assigns textContent, which the browser never parses.
func (e *JSElement) SetText(text string) {
	e.el.Set("textContent", text)
}

// SetHTML assigns innerHTML.
func (e *JSElement) SetHTML(markup string) {
	e.el.Set("innerHTML", markup)
}

// AppendChild creates n in the document and appends it.
func (e *JSElement) AppendChild(n *vdom.VNode) {
	vdom.RenderTo(e.el, n)
}

// Images returns the <img> descendants in document order.
func (e *JSElement) Images() []Image {
	list := e.el.Call("querySelectorAll", "img")
	length := list.Get("length").Int()
	out := make([]Image, 0, length)
	for i := 0; i < length; i++ {
		out = append(out, &jsImage{el: list.Call("item", i)})
	}
	return out
}

type jsImage struct {
	el js.Value
}

func (i *jsImage) Src() string {
	v := i.el.Call("getAttribute", "src")
	if v.IsNull() {
		return ""
	}
	return v.String()
}

// OnLoad settles on either the load or the error event. Both listeners
// are removed and their js.Funcs released once either fires, or when
// the returned func is called first.
func (i *jsImage) OnLoad(fn func()) func() {
	var onLoad, onError js.Func
	released := false
	release := func() {
		if released {
			return
		}
		released = true
		i.el.Call("removeEventListener", "load", onLoad)
		i.el.Call("removeEventListener", "error", onError)
		onLoad.Release()
		onError.Release()
	}
	onLoad = js.FuncOf(func(this js.Value, args []js.Value) any {
		release()
		fn()
		return nil
	})
	onError = js.FuncOf(func(this js.Value, args []js.Value) any {
		release()
		fn()
		return nil
	})
	i.el.Call("addEventListener", "load", onLoad)
	i.el.Call("addEventListener", "error", onError)
	return release
}
