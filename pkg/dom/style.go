package dom

import "strings"

// styleProp is one declaration inside an inline style attribute. Order is
// preserved so edits do not reshuffle unrelated declarations.
type styleProp struct {
	name  string
	value string
}

func parseStyle(s string) []styleProp {
	var props []styleProp
	for _, decl := range strings.Split(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		props = append(props, styleProp{
			name:  strings.TrimSpace(name),
			value: strings.TrimSpace(value),
		})
	}
	return props
}

func renderStyle(props []styleProp) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p.name+": "+p.value)
	}
	return strings.Join(parts, "; ")
}

// StyleDisplay returns the element's inline display value, or "" if the
// style attribute carries no display declaration.
func (e *Element) StyleDisplay() string {
	style, _ := e.Attr("style")
	for _, p := range parseStyle(style) {
		if p.name == "display" {
			return p.value
		}
	}
	return ""
}

// SetStyleDisplay sets the inline display value, preserving any other
// declarations. An empty value removes the display declaration entirely so
// the element falls back to its natural display mode.
func (e *Element) SetStyleDisplay(value string) {
	style, _ := e.Attr("style")
	props := parseStyle(style)

	kept := props[:0]
	for _, p := range props {
		if p.name != "display" {
			kept = append(kept, p)
		}
	}
	if value != "" {
		kept = append(kept, styleProp{name: "display", value: value})
	}

	if len(kept) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", renderStyle(kept))
}
