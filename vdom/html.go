package vdom

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML converts a VNode tree into a detached x/net/html subtree.
// Content becomes a text node ahead of any children; it is never parsed.
func ToHTML(n *VNode) *html.Node {
	if n == nil {
		return nil
	}
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     attributesToHTML(n.Attributes),
	}
	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if c := ToHTML(child); c != nil {
			el.AppendChild(c)
		}
	}
	return el
}

// attributesToHTML renders attributes in key order. Boolean true becomes
// a valueless attribute; boolean false is omitted.
func attributesToHTML(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				out = append(out, html.Attribute{Key: k})
			}
		default:
			out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		}
	}
	return out
}

// RenderString serializes a VNode tree to HTML.
func RenderString(n *VNode) (string, error) {
	node := ToHTML(n)
	if node == nil {
		return "", nil
	}
	var sb strings.Builder
	if err := html.Render(&sb, node); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", n.Tag, err)
	}
	return sb.String(), nil
}
