// Package label renders a label component from its update record.
//
// The record's mode attribute decides how the payload is read and how it
// reaches the target: as literal text, as a preformatted block, or as
// markup. Modes that may carry remote images also register load hooks on
// the installed content so a later layout pass can react once every
// image has arrived.
package label

import (
	"fmt"

	"github.com/vcrobe/nojs-uidl/dom"
	"github.com/vcrobe/nojs-uidl/uidl"
	"github.com/vcrobe/nojs-uidl/vdom"
)

// RenderError reports an update record that lacks the children its mode
// requires. It wraps the uidl access error.
type RenderError struct {
	Mode Mode
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("label: malformed %s update: %v", e.Mode, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Render installs the content of u into t according to u's mode.
//
// Everything the mode needs is read from u before t is touched, so a
// malformed record returns a *RenderError and leaves t unchanged.
//
// For ModeXHTML and ModeRaw the returned group tracks the images of the
// new content; opts configure it. For every other mode the group is nil.
func Render(u *uidl.Node, t dom.Target, opts ...dom.LoadOption) (*dom.LoadGroup, error) {
	mode := ModeOf(u)

	switch mode {
	case ModeText:
		text, err := u.ChildString(0)
		if err != nil {
			return nil, &RenderError{Mode: mode, Err: err}
		}
		t.SetText(text)

	case ModePre:
		text, err := nestedString(u)
		if err != nil {
			return nil, &RenderError{Mode: mode, Err: err}
		}
		t.SetHTML("")
		t.AppendChild(vdom.Pre(text))

	case ModeUIDL:
		t.SetHTML(u.ChildrenAsXML())

	case ModeXHTML:
		markup, err := xhtmlContent(u)
		if err != nil {
			return nil, &RenderError{Mode: mode, Err: err}
		}
		t.SetHTML(markup)

	case ModeXML, ModeRaw:
		markup, err := nestedString(u)
		if err != nil {
			return nil, &RenderError{Mode: mode, Err: err}
		}
		t.SetHTML(markup)

	case ModeUnknown:
		t.SetText("")
	}

	if mode.SinksImages() {
		return dom.SinkOnloadForImages(t, opts...), nil
	}
	return nil, nil
}

// nestedString reads the string at child 0 of child 0.
func nestedString(u *uidl.Node) (string, error) {
	data, err := u.ChildNode(0)
	if err != nil {
		return "", err
	}
	return data.ChildString(0)
}

// xhtmlContent descends to the content node at child 0 of child 0 and
// returns its first string child, or "" when it is empty.
func xhtmlContent(u *uidl.Node) (string, error) {
	data, err := u.ChildNode(0)
	if err != nil {
		return "", err
	}
	content, err := data.ChildNode(0)
	if err != nil {
		return "", err
	}
	if content.ChildCount() == 0 {
		return "", nil
	}
	return content.ChildString(0)
}
