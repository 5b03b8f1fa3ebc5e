package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

type selectorKind uint8

const (
	selectorID selectorKind = iota
	selectorClass
	selectorTag
)

// selector is a parsed single-term selector: "#id", ".class", or "tag".
type selector struct {
	kind  selectorKind
	value string
}

func parseSelector(s string) (selector, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return selector{}, fmt.Errorf("dom: empty selector")
	case strings.HasPrefix(s, "#"):
		if len(s) == 1 {
			return selector{}, fmt.Errorf("dom: empty id selector")
		}
		return selector{kind: selectorID, value: s[1:]}, nil
	case strings.HasPrefix(s, "."):
		if len(s) == 1 {
			return selector{}, fmt.Errorf("dom: empty class selector")
		}
		return selector{kind: selectorClass, value: s[1:]}, nil
	default:
		return selector{kind: selectorTag, value: strings.ToLower(s)}, nil
	}
}

func (s selector) matches(n *html.Node) bool {
	switch s.kind {
	case selectorID:
		return attrValue(n, "id") == s.value
	case selectorClass:
		return hasClass(n, s.value)
	default:
		return n.Data == s.value
	}
}

func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
