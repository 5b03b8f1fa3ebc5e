// Package dom implements the in-memory document the view tree renders into.
//
// It wraps golang.org/x/net/html nodes with the narrow surface the lifecycle
// controller needs: selector queries that may return zero, one, or many
// matches, fragment insertion, inline display toggling, and per-element
// event-listener bookkeeping. The document is exclusively owned and mutated
// by a single logical caller at a time.
package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Document is a live HTML document.
type Document struct {
	root      *html.Node
	listeners map[*html.Node]map[string][]ListenerFunc
}

// NewDocument creates an empty document with html/head/body structure.
func NewDocument() *Document {
	doc, err := ParseDocument("<!DOCTYPE html><html><head></head><body></body></html>")
	if err != nil {
		// The static shell above always parses.
		panic("dom: building empty document: " + err.Error())
	}
	return doc
}

// ParseDocument parses a complete HTML document.
func ParseDocument(markup string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node]map[string][]ListenerFunc),
	}, nil
}

// Body returns the document body element, or nil if the document has none.
func (d *Document) Body() *Element {
	n := findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "body"
	})
	if n == nil {
		return nil
	}
	return &Element{doc: d, node: n}
}

// Query returns every element matching the selector, in document order.
// Supported selector forms: "#id", ".class", and a bare tag name.
func (d *Document) Query(selector string) []*Element {
	sel, err := parseSelector(selector)
	if err != nil {
		return nil
	}
	var out []*Element
	walk(d.root, func(n *html.Node) {
		if n.Type == html.ElementNode && sel.matches(n) {
			out = append(out, &Element{doc: d, node: n})
		}
	})
	return out
}

// HTML serializes the whole document.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// walk visits n and its descendants in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// findFirst returns the first node in document order matching the predicate.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}
