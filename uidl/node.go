// Package uidl models the tree-shaped update records a server sends to
// the client once per update cycle.
//
// A record is immutable once built: callers read attributes and children
// but never change them. Children are either nested records or literal
// strings, and are addressed by position.
package uidl

// Attr is a single attribute of a Node.
type Attr struct {
	Key   string
	Value string
}

// A is shorthand for building an Attr.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Child is one positional child of a Node: either a nested Node or a
// literal string.
type Child struct {
	node *Node
	text string
}

// Elem wraps a nested node as a child.
func Elem(n *Node) Child {
	return Child{node: n}
}

// Text wraps a literal string as a child.
func Text(s string) Child {
	return Child{text: s}
}

// Node returns the nested node, if the child is one.
func (c Child) Node() (*Node, bool) {
	return c.node, c.node != nil
}

// Text returns the literal string, if the child is one.
func (c Child) Text() (string, bool) {
	if c.node != nil {
		return "", false
	}
	return c.text, true
}

// Node is an update record.
type Node struct {
	Tag      string
	attrs    []Attr
	children []Child
}

// New builds a node. The attrs and children slices are copied, so the
// caller may reuse them.
func New(tag string, attrs []Attr, children ...Child) *Node {
	n := &Node{Tag: tag}
	if len(attrs) > 0 {
		n.attrs = append([]Attr(nil), attrs...)
	}
	if len(children) > 0 {
		n.children = append([]Child(nil), children...)
	}
	return n
}

// Attrs returns a copy of the node's attributes in declaration order.
func (n *Node) Attrs() []Attr {
	return append([]Attr(nil), n.attrs...)
}

// StringAttribute looks up an attribute by name.
func (n *Node) StringAttribute(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.StringAttribute(name)
	return ok
}

// BooleanAttribute reports whether the attribute is present and equal to "true".
func (n *Node) BooleanAttribute(name string) bool {
	v, ok := n.StringAttribute(name)
	return ok && v == "true"
}

// ID returns the "id" attribute, or "" when absent.
func (n *Node) ID() string {
	v, _ := n.StringAttribute("id")
	return v
}

// ChildCount returns the number of positional children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Children returns a copy of the node's children.
func (n *Node) Children() []Child {
	return append([]Child(nil), n.children...)
}

// ChildNode returns child i, which must be a nested node.
func (n *Node) ChildNode(i int) (*Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, &AccessError{Tag: n.Tag, Index: i, Count: len(n.children), Err: ErrChildIndex}
	}
	child, ok := n.children[i].Node()
	if !ok {
		return nil, &AccessError{Tag: n.Tag, Index: i, Count: len(n.children), Want: "node", Err: ErrChildType}
	}
	return child, nil
}

// ChildString returns child i, which must be a literal string.
func (n *Node) ChildString(i int) (string, error) {
	if i < 0 || i >= len(n.children) {
		return "", &AccessError{Tag: n.Tag, Index: i, Count: len(n.children), Err: ErrChildIndex}
	}
	s, ok := n.children[i].Text()
	if !ok {
		return "", &AccessError{Tag: n.Tag, Index: i, Count: len(n.children), Want: "string", Err: ErrChildType}
	}
	return s, nil
}
