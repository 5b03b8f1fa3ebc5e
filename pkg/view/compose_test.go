package view

import (
	"strings"
	"testing"

	"github.com/viewkit-go/viewkit/pkg/id"
)

func TestAutoChildrenGetDistinctAnchors(t *testing.T) {
	env := newTestEnv(t, appShell, map[string]string{
		"parent": `<div class="vk-slot"></div><div class="vk-slot"></div>`,
		"item":   "<span>{{.label}}</span>",
	})
	env.Registry.RegisterConfig("item", Config{ElementPath: "auto", TemplateName: "item"})

	n := New(env, Config{
		ElementPath:  "#app",
		TemplateName: "parent",
		Items: []ChildSpec{
			ChildWith("item", Config{Data: map[string]any{"label": "one"}}),
			ChildWith("item", Config{Data: map[string]any{"label": "two"}}),
		},
	})
	if res := n.Init(); !res.OK() {
		t.Fatalf("Init() = %+v", res)
	}
	if res := n.Render(); !res.OK() {
		t.Fatalf("Render() = %+v", res)
	}

	html := docHTML(t, env)
	for _, want := range []string{"<span>one</span>", "<span>two</span>"} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %s:\n%s", want, html)
		}
	}

	first := n.ChildAt(0).Element()
	second := n.ChildAt(1).Element()
	if first == nil || second == nil {
		t.Fatal("auto children have no anchors")
	}
	if first.ID() == second.ID() {
		t.Errorf("auto anchors collide: %q", first.ID())
	}
}

func TestAutoAnchorsDistinctAcrossTrees(t *testing.T) {
	alloc := id.New("shared-")
	templates := map[string]string{
		"parent": `<div class="vk-slot"></div>`,
		"item":   "<span>x</span>",
	}

	ids := make(map[string]bool)
	for _, anchor := range []string{"#app", "#app"} {
		env := newTestEnv(t, appShell, templates)
		env.IDs = alloc
		env.Registry.RegisterConfig("item", Config{ElementPath: "auto", TemplateName: "item"})

		n := New(env, Config{ElementPath: anchor, TemplateName: "parent", Items: []ChildSpec{Child("item")}})
		if res := n.Init(); !res.OK() {
			t.Fatalf("Init() = %+v", res)
		}
		if res := n.Render(); !res.OK() {
			t.Fatalf("Render() = %+v", res)
		}

		got := n.ChildAt(0).Element().ID()
		if ids[got] {
			t.Fatalf("anchor %q reused across trees", got)
		}
		ids[got] = true
	}
}

func TestSlotDeficitPanics(t *testing.T) {
	env := newTestEnv(t, appShell, map[string]string{
		"parent": `<div class="vk-slot"></div>`,
		"item":   "<span>x</span>",
	})
	env.Registry.RegisterConfig("item", Config{ElementPath: "auto", TemplateName: "item"})

	n := New(env, Config{
		ElementPath:  "#app",
		TemplateName: "parent",
		Items:        []ChildSpec{Child("item"), Child("item")},
	})
	if res := n.Init(); !res.OK() {
		t.Fatalf("Init() = %+v", res)
	}

	defer func() {
		if recover() == nil {
			t.Error("render with too few slots did not panic")
		}
	}()
	n.Render()
}

func TestFixedChildrenCountAgainstSlots(t *testing.T) {
	// Slots map to children by position, so a fixed-anchor child still
	// claims a slot even though it renders into its own selector.
	shell := `<!DOCTYPE html><html><body><div id="app"></div><div id="side"></div></body></html>`
	env := newTestEnv(t, shell, map[string]string{
		"parent": `<div class="vk-slot"></div>`,
		"panel":  "<aside>panel</aside>",
		"item":   "<span>x</span>",
	})
	env.Registry.RegisterConfig("panel", Config{ElementPath: "#side", TemplateName: "panel"})
	env.Registry.RegisterConfig("item", Config{ElementPath: "auto", TemplateName: "item"})

	n := New(env, Config{
		ElementPath:  "#app",
		TemplateName: "parent",
		Items:        []ChildSpec{Child("panel"), Child("item")},
	})
	if res := n.Init(); !res.OK() {
		t.Fatalf("Init() = %+v", res)
	}

	defer func() {
		if recover() == nil {
			t.Error("render with fewer slots than declared children did not panic")
		}
	}()
	n.Render()
}

func TestChildrenMapToSlotsByPosition(t *testing.T) {
	shell := `<!DOCTYPE html><html><body><div id="app"></div><div id="side"></div></body></html>`
	env := newTestEnv(t, shell, map[string]string{
		"parent": `<div class="vk-slot"></div><div class="vk-slot"></div>`,
		"panel":  "<aside>panel</aside>",
		"item":   "<span>x</span>",
	})
	env.Registry.RegisterConfig("panel", Config{ElementPath: "#side", TemplateName: "panel"})
	env.Registry.RegisterConfig("item", Config{ElementPath: "auto", TemplateName: "item"})

	n := New(env, Config{
		ElementPath:  "#app",
		TemplateName: "parent",
		Items:        []ChildSpec{Child("panel"), Child("item")},
	})
	if res := n.Init(); !res.OK() {
		t.Fatalf("Init() = %+v", res)
	}
	if res := n.Render(); !res.OK() {
		t.Fatalf("Render() = %+v", res)
	}

	slots := n.Element().FindByClass("vk-slot")
	if len(slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(slots))
	}
	// The fixed child's slot stays empty; the auto child lands in its own
	// positional slot, never the first free one.
	if got := slots[0].ID(); got != "" {
		t.Errorf("fixed child's slot got anchor %q, want none", got)
	}
	auto := n.ChildAt(1).Element()
	if auto == nil || auto.ID() == "" {
		t.Fatal("auto child has no anchor")
	}
	if got := slots[1].ID(); got != auto.ID() {
		t.Errorf("auto anchor on slot %q, want %q on the second slot", got, auto.ID())
	}
	if html := docHTML(t, env); !strings.Contains(html, "<aside>panel</aside>") {
		t.Errorf("fixed child not rendered into its own anchor:\n%s", html)
	}
}

func TestSurplusSlotsStayEmpty(t *testing.T) {
	env := newTestEnv(t, appShell, map[string]string{
		"parent": `<div class="vk-slot"></div><div class="vk-slot"></div>`,
		"item":   "<span>only</span>",
	})
	env.Registry.RegisterConfig("item", Config{ElementPath: "auto", TemplateName: "item"})

	n := New(env, Config{
		ElementPath:  "#app",
		TemplateName: "parent",
		Items:        []ChildSpec{Child("item")},
	})
	if res := n.Init(); !res.OK() {
		t.Fatalf("Init() = %+v", res)
	}
	if res := n.Render(); !res.OK() {
		t.Fatalf("Render() = %+v", res)
	}

	if html := docHTML(t, env); strings.Count(html, "<span>only</span>") != 1 {
		t.Errorf("surplus slot changed rendering:\n%s", html)
	}
}

func TestPureContainerRenders(t *testing.T) {
	env := newTestEnv(t, appShell, nil)
	n := New(env, Config{ElementPath: "#app"})

	if res := n.Render(); !res.OK() {
		t.Fatalf("Render() without template = %+v", res)
	}
	if !n.Rendered() {
		t.Error("pure container not marked rendered")
	}
}

func TestBadChildDeclarationsAreSkipped(t *testing.T) {
	env := newTestEnv(t, appShell, map[string]string{
		"parent": `<div class="vk-slot"></div>`,
		"item":   "<span>good</span>",
	})
	env.Registry.RegisterConfig("item", Config{ElementPath: "auto", TemplateName: "item"})

	n := New(env, Config{
		ElementPath:  "#app",
		TemplateName: "parent",
		Items: []ChildSpec{
			{Type: ""},       // no type key
			Child("unknown"), // not registered
			Child("item"),    // valid
		},
	})

	var errCount int
	n.On(EventError, func(args ...any) { errCount++ })

	if res := n.Init(); !res.OK() {
		t.Fatalf("Init() = %+v", res)
	}

	if errCount != 2 {
		t.Errorf("error notifications = %d, want 2", errCount)
	}
	if len(n.Items()) != 1 {
		t.Fatalf("materialized children = %d, want 1", len(n.Items()))
	}
	if res := n.Render(); !res.OK() {
		t.Fatalf("Render() = %+v", res)
	}
	if html := docHTML(t, env); !strings.Contains(html, "<span>good</span>") {
		t.Error("surviving child not rendered")
	}
}

func TestNestedTreesRenderDepthFirst(t *testing.T) {
	env := newTestEnv(t, appShell, map[string]string{
		"outer": `<section><div class="vk-slot"></div></section>`,
		"inner": `<article><div class="vk-slot"></div></article>`,
		"leaf":  "<em>deep</em>",
	})
	env.Registry.RegisterConfig("leaf", Config{ElementPath: "auto", TemplateName: "leaf"})
	env.Registry.RegisterConfig("inner", Config{
		ElementPath:  "auto",
		TemplateName: "inner",
		Items:        []ChildSpec{Child("leaf")},
	})

	n := New(env, Config{
		ElementPath:  "#app",
		TemplateName: "outer",
		Items:        []ChildSpec{Child("inner")},
	})
	if res := n.Init(); !res.OK() {
		t.Fatalf("Init() = %+v", res)
	}
	if res := n.Render(); !res.OK() {
		t.Fatalf("Render() = %+v", res)
	}

	html := docHTML(t, env)
	if !strings.Contains(html, "<em>deep</em>") {
		t.Errorf("grandchild not rendered:\n%s", html)
	}
	inner := n.ChildByType("inner")
	if inner == nil || inner.ChildByType("leaf") == nil {
		t.Fatal("nested children not materialized")
	}
}
