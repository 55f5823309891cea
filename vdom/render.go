//go:build js || wasm
// +build js wasm

package vdom

import (
	"fmt"
	"syscall/js"

	"github.com/vcrobe/nojs-uidl/console"
)

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := CreateElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes correctly.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		}
		// If false, don't set the attribute at all
		return
	}
	el.Call("setAttribute", key, fmt.Sprint(value))
}

// CreateElement builds a live DOM node for n. Content is assigned through
// textContent, so it is never interpreted as markup.
func CreateElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		return doc.Call("createTextNode", n.Content)
	}
	if n.Tag == "" {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	if n.Content != "" {
		el.Set("textContent", n.Content)
	}
	for _, child := range n.Children {
		childEl := CreateElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}
	return el
}
