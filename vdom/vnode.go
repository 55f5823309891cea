package vdom

// TextTag marks a VNode that is a bare text node rather than an element.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or TextTag
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // Literal text content, never parsed as markup
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Pre creates a <pre> VNode holding text verbatim. Markup characters in
// text are displayed, not interpreted.
func Pre(text string) *VNode {
	return NewVNode("pre", nil, nil, text)
}

// Span creates a <span> VNode with the given children and allows passing attributes.
func Span(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("span", attrs, children, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}
