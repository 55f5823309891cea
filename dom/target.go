// Package dom defines the live element a component draws into, with an
// in-memory implementation backed by golang.org/x/net/html and a browser
// implementation for js/wasm builds.
package dom

import "github.com/vcrobe/nojs-uidl/vdom"

// Target is the on-screen element that receives rendered content. It is
// owned by the surrounding widget; renderers only mutate it.
type Target interface {
	// SetText replaces the displayed content with literal text. Markup
	// characters are escaped by the target.
	SetText(text string)

	// SetHTML replaces the displayed content with parsed markup.
	SetHTML(markup string)

	// AppendChild adds n after the current content.
	AppendChild(n *vdom.VNode)

	// Images returns the image elements currently under the target.
	Images() []Image
}

// Image is an embedded image element whose load can be observed.
type Image interface {
	Src() string

	// OnLoad registers fn to run once when the image settles. The host
	// invokes fn later from its own event loop. Calling the returned
	// release func before then unregisters fn; later calls do nothing.
	OnLoad(fn func()) (release func())
}
