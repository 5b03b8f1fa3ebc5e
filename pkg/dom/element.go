package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a live handle to one element node in a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	return attrValue(e.node, "id")
}

// SetID assigns the element's id attribute.
func (e *Element) SetID(id string) {
	e.SetAttr("id", id)
}

// Attr returns the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing any existing value.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr removes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// AppendHTML parses the markup fragment in this element's context and
// appends the resulting nodes as children.
func (e *Element) AppendHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     e.node.Data,
		DataAtom: atom.Lookup([]byte(e.node.Data)),
	})
	if err != nil {
		return err
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// Empty removes every child node, dropping listener registrations for the
// removed subtree.
func (e *Element) Empty() {
	for e.node.FirstChild != nil {
		c := e.node.FirstChild
		e.doc.dropListenersDeep(c)
		e.node.RemoveChild(c)
	}
}

// Remove detaches the element from its parent and drops listener
// registrations for its subtree.
func (e *Element) Remove() {
	e.doc.dropListenersDeep(e.node)
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

// Children returns the element's direct element children.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, &Element{doc: e.doc, node: c})
		}
	}
	return out
}

// FindByClass returns every descendant carrying the given class, in
// document order. The element itself is not considered.
func (e *Element) FindByClass(class string) []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		walk(c, func(n *html.Node) {
			if n.Type == html.ElementNode && hasClass(n, class) {
				out = append(out, &Element{doc: e.doc, node: n})
			}
		})
	}
	return out
}

// HasClass reports whether the element carries the given class.
func (e *Element) HasClass(class string) bool {
	return hasClass(e.node, class)
}

// Text returns the concatenated text content of the subtree.
func (e *Element) Text() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
	})
	return b.String()
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() (string, error) {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// OuterHTML serializes the element and its subtree.
func (e *Element) OuterHTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Same reports whether two handles refer to the same underlying node.
func (e *Element) Same(other *Element) bool {
	return other != nil && e.node == other.node
}
