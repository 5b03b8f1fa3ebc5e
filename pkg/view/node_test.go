package view

import (
	"io"
	"log/slog"
	"testing"

	"github.com/viewkit-go/viewkit/pkg/dom"
	"github.com/viewkit-go/viewkit/pkg/id"
	"github.com/viewkit-go/viewkit/pkg/template"
)

// newTestEnv builds an environment around a parsed shell and inline
// templates, with a quiet logger and a fresh id allocator.
func newTestEnv(t *testing.T, shell string, templates map[string]string) *Env {
	t.Helper()

	doc, err := dom.ParseDocument(shell)
	if err != nil {
		t.Fatalf("parsing shell: %v", err)
	}

	store := template.NewStore()
	for name, src := range templates {
		store.Add(name, src)
	}

	return &Env{
		Doc:       doc,
		Templates: store,
		Registry:  NewRegistry(),
		IDs:       id.New("t-"),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

const appShell = `<!DOCTYPE html><html><head></head><body><div id="app"></div></body></html>`

func TestNewNodeStartsUnrendered(t *testing.T) {
	env := newTestEnv(t, appShell, nil)

	n := New(env, Config{ElementPath: "#app"})

	if n.Rendered() {
		t.Error("fresh node reports rendered")
	}
	if n.Destroyed() {
		t.Error("fresh node reports destroyed")
	}
	if n.Parent() != nil {
		t.Error("root node has a parent")
	}
}

func TestNodeName(t *testing.T) {
	env := newTestEnv(t, appShell, nil)

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"explicit name wins", Config{Name: "sidebar", ElementPath: "#app"}, "sidebar"},
		{"element path fallback", Config{ElementPath: "#app"}, "#app"},
		{"bare node", Config{}, "node"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(env, tt.cfg).Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetTemplateKeepsPreviousOnUnknownName(t *testing.T) {
	env := newTestEnv(t, appShell, map[string]string{
		"a": "<p>a</p>",
	})
	n := New(env, Config{ElementPath: "#app", TemplateName: "a"})

	n.SetTemplate("missing")

	if n.cfg.TemplateName != "a" {
		t.Errorf("template name changed to %q", n.cfg.TemplateName)
	}
	if n.templateSrc != "<p>a</p>" {
		t.Errorf("template source changed to %q", n.templateSrc)
	}
}

func TestSetDataDoesNotRender(t *testing.T) {
	env := newTestEnv(t, appShell, map[string]string{
		"greet": "<p>{{.msg}}</p>",
	})
	n := New(env, Config{ElementPath: "#app", TemplateName: "greet"})

	n.SetData(map[string]any{"msg": "hi"})

	if n.Rendered() {
		t.Error("SetData triggered a render")
	}
	if got := n.Data()["msg"]; got != "hi" {
		t.Errorf("Data()[msg] = %v, want hi", got)
	}
}

func TestChildLookups(t *testing.T) {
	env := newTestEnv(t, appShell, map[string]string{
		"parent": `<div class="vk-slot"></div><div class="vk-slot"></div><div class="vk-slot"></div>`,
	})
	env.Registry.RegisterConfig("widget", Config{ElementPath: "auto"})
	env.Registry.RegisterConfig("badge", Config{ElementPath: "auto"})

	n := New(env, Config{
		ElementPath:  "#app",
		TemplateName: "parent",
		Items: []ChildSpec{
			ChildWith("widget", Config{ItemID: "first"}),
			Child("badge"),
			ChildWith("widget", Config{ItemID: "last"}),
		},
	})
	if res := n.Init(); !res.OK() {
		t.Fatalf("Init() = %+v", res)
	}

	if got := n.ChildByID("first"); got == nil || got.ItemID() != "first" {
		t.Error("ChildByID(first) missed")
	}
	if got := n.ChildByType("widget"); got == nil || got.ItemID() != "last" {
		t.Error("ChildByType(widget) should return the last declared")
	}
	if got := n.ChildAt(1); got == nil || got.TypeKey() != "badge" {
		t.Error("ChildAt(1) missed")
	}
	if n.ChildAt(3) != nil || n.ChildAt(-1) != nil {
		t.Error("out-of-range ChildAt should be nil")
	}
	// Child prefers the explicit id over the type key.
	if got := n.Child("first"); got == nil || got.ItemID() != "first" {
		t.Error("Child(first) missed the id index")
	}
	if got := n.Child("badge"); got == nil || got.TypeKey() != "badge" {
		t.Error("Child(badge) missed the type index")
	}
	if n.Child("nope") != nil {
		t.Error("Child(nope) should be nil")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	env := newTestEnv(t, appShell, nil)
	env.Registry.RegisterConfig("w", Config{ElementPath: "auto"})

	n := New(env, Config{ElementPath: "#app", Items: []ChildSpec{Child("w"), Child("w")}})
	if res := n.Init(); !res.OK() {
		t.Fatalf("Init() = %+v", res)
	}

	items := n.Items()
	if len(items) != 2 {
		t.Fatalf("Items() = %d, want 2", len(items))
	}
	items[0] = nil
	if n.ChildAt(0) == nil {
		t.Error("mutating the returned slice reached the node")
	}
}

func TestSetItemsRematerializes(t *testing.T) {
	env := newTestEnv(t, appShell, nil)
	env.Registry.RegisterConfig("a", Config{ElementPath: "auto"})
	env.Registry.RegisterConfig("b", Config{ElementPath: "auto"})

	n := New(env, Config{ElementPath: "#app", Items: []ChildSpec{Child("a")}})
	if res := n.Init(); !res.OK() {
		t.Fatalf("Init() = %+v", res)
	}
	old := n.ChildByType("a")

	n.SetItems([]ChildSpec{Child("b")})

	if !old.Destroyed() {
		t.Error("replaced child not destroyed")
	}
	if n.ChildByType("a") != nil {
		t.Error("old type index survived SetItems")
	}
	if n.ChildByType("b") == nil {
		t.Error("new child not materialized")
	}
}
