package dom

import (
	"strings"
	"testing"
)

const shell = `<!DOCTYPE html><html><head></head><body>` +
	`<div id="app" class="host"><p class="note">one</p><p class="note">two</p></div>` +
	`<span id="side"></span>` +
	`</body></html>`

func parse(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseDocument(shell)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	return doc
}

func TestQuerySelectors(t *testing.T) {
	doc := parse(t)

	tests := []struct {
		selector string
		want     int
	}{
		{"#app", 1},
		{"#missing", 0},
		{".note", 2},
		{".nope", 0},
		{"p", 2},
		{"span", 1},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			if got := len(doc.Query(tt.selector)); got != tt.want {
				t.Errorf("Query(%q) = %d matches, want %d", tt.selector, got, tt.want)
			}
		})
	}
}

func TestAppendHTMLAndEmpty(t *testing.T) {
	doc := parse(t)
	app := doc.Query("#app")[0]

	if err := app.AppendHTML(`<ul><li>x</li></ul>`); err != nil {
		t.Fatalf("AppendHTML: %v", err)
	}
	html, err := doc.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "<li>x</li>") {
		t.Errorf("appended markup missing:\n%s", html)
	}

	app.Empty()
	html, _ = doc.HTML()
	if strings.Contains(html, "<li>x</li>") || strings.Contains(html, "note") {
		t.Errorf("Empty left content behind:\n%s", html)
	}
	// The element itself survives.
	if len(doc.Query("#app")) != 1 {
		t.Error("Empty removed the element")
	}
}

func TestFindByClassExcludesSelf(t *testing.T) {
	doc, err := ParseDocument(`<html><body><div id="a" class="slot"><div class="slot"></div></div></body></html>`)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	a := doc.Query("#a")[0]

	found := a.FindByClass("slot")
	if len(found) != 1 {
		t.Fatalf("FindByClass = %d matches, want 1 (descendants only)", len(found))
	}
	if found[0].Same(a) {
		t.Error("FindByClass returned the element itself")
	}
}

func TestAttrRoundTrip(t *testing.T) {
	doc := parse(t)
	side := doc.Query("#side")[0]

	side.SetAttr("data-x", "1")
	if v, ok := side.Attr("data-x"); !ok || v != "1" {
		t.Errorf("Attr(data-x) = %q, %v", v, ok)
	}

	side.SetAttr("data-x", "2")
	if v, _ := side.Attr("data-x"); v != "2" {
		t.Errorf("SetAttr did not replace, got %q", v)
	}

	side.RemoveAttr("data-x")
	if _, ok := side.Attr("data-x"); ok {
		t.Error("RemoveAttr left the attribute")
	}
}

func TestSetIDRewritesAnchor(t *testing.T) {
	doc := parse(t)
	side := doc.Query("#side")[0]

	side.SetID("renamed")

	if len(doc.Query("#side")) != 0 {
		t.Error("old id still matches")
	}
	if len(doc.Query("#renamed")) != 1 {
		t.Error("new id does not match")
	}
}

func TestStyleDisplayRoundTrip(t *testing.T) {
	doc, err := ParseDocument(`<html><body><div id="a" style="color:red; display:grid"></div><div id="b"></div></body></html>`)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	a := doc.Query("#a")[0]
	b := doc.Query("#b")[0]

	if got := a.StyleDisplay(); got != "grid" {
		t.Errorf("StyleDisplay = %q, want grid", got)
	}
	if got := b.StyleDisplay(); got != "" {
		t.Errorf("StyleDisplay on bare element = %q, want empty", got)
	}

	a.SetStyleDisplay("none")
	if got := a.StyleDisplay(); got != "none" {
		t.Errorf("StyleDisplay after set = %q, want none", got)
	}

	// Other declarations survive the round trip.
	a.SetStyleDisplay("grid")
	style, _ := a.Attr("style")
	if !strings.Contains(style, "color: red") {
		t.Errorf("style lost unrelated declaration: %q", style)
	}

	// Restoring an empty value removes the declaration entirely.
	b.SetStyleDisplay("none")
	b.SetStyleDisplay("")
	if style, ok := b.Attr("style"); ok && strings.Contains(style, "display") {
		t.Errorf("empty restore left display declaration: %q", style)
	}
}

func TestListenersDispatchAndBubble(t *testing.T) {
	doc := parse(t)
	app := doc.Query("#app")[0]
	note := doc.Query(".note")[0]

	var got []string
	note.On("tap", func(e Event) { got = append(got, "note") })
	app.On("tap", func(e Event) { got = append(got, "app") })

	note.Dispatch("tap", nil)

	if len(got) != 2 || got[0] != "note" || got[1] != "app" {
		t.Errorf("dispatch order = %v, want [note app]", got)
	}
}

func TestEmptyDropsSubtreeListeners(t *testing.T) {
	doc := parse(t)
	app := doc.Query("#app")[0]
	note := doc.Query(".note")[0]

	fired := false
	note.On("tap", func(e Event) { fired = true })
	app.Empty()

	note.Dispatch("tap", nil)
	if fired {
		t.Error("listener on removed subtree still fired")
	}
	if app.ListenerCount("tap") != 0 && note.ListenerCount("tap") != 0 {
		t.Error("subtree listeners not dropped")
	}
}

func TestDetachListeners(t *testing.T) {
	doc := parse(t)
	app := doc.Query("#app")[0]

	app.On("tap", func(e Event) {})
	if app.ListenerCount("tap") != 1 {
		t.Fatalf("ListenerCount = %d, want 1", app.ListenerCount("tap"))
	}

	app.DetachListeners()
	if app.ListenerCount("tap") != 0 {
		t.Error("DetachListeners left listeners")
	}
}
