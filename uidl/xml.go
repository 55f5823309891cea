package uidl

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ChildrenAsXML serializes every child of n, in order, as an XML
// fragment. Element children keep their attributes in declaration order;
// string children are escaped.
func (n *Node) ChildrenAsXML() string {
	doc := etree.NewDocument()
	appendChildren(&doc.Element, n.children)

	var sb strings.Builder
	// strings.Builder never returns a write error.
	_, _ = doc.WriteTo(&sb)
	return sb.String()
}

func appendChildren(parent *etree.Element, children []Child) {
	for _, c := range children {
		if child, ok := c.Node(); ok {
			el := parent.CreateElement(child.Tag)
			for _, a := range child.attrs {
				el.CreateAttr(a.Key, a.Value)
			}
			appendChildren(el, child.children)
			continue
		}
		s, _ := c.Text()
		parent.CreateText(s)
	}
}

// ParseXML decodes a record from its XML wire form. The document must
// have exactly one root element.
func ParseXML(s string) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return fromElement(root), nil
}

func fromElement(el *etree.Element) *Node {
	n := &Node{Tag: el.FullTag()}
	for _, a := range el.Attr {
		n.attrs = append(n.attrs, Attr{Key: a.FullKey(), Value: a.Value})
	}

	hasElements := len(el.ChildElements()) > 0
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			n.children = append(n.children, Elem(fromElement(t)))
		case *etree.CharData:
			if hasElements && isIndentation(t) {
				continue
			}
			n.children = append(n.children, Text(t.Data))
		}
	}
	return n
}

// isIndentation reports whether t is line-break whitespace between
// element children. Inline spaces such as "</b> <i>" are content.
func isIndentation(t *etree.CharData) bool {
	return t.IsWhitespace() && strings.ContainsAny(t.Data, "\r\n")
}
