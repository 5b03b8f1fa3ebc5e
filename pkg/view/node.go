// Package view implements the base behavior shared by every component in a
// viewkit tree: lifecycle orchestration, visibility and enablement toggling,
// and parent/child composition with template-driven materialization.
//
// A Node is created unrendered, recursively instantiates its declared
// children during Init, and is rendered, shown, hidden, enabled, disabled,
// cleared, and destroyed through cancellable lifecycle transitions. The tree
// is exclusively owned and mutated by a single logical caller at a time;
// re-entrant lifecycle calls on the same node are a caller error.
package view

import (
	"github.com/viewkit-go/viewkit/pkg/dom"
	"github.com/viewkit-go/viewkit/pkg/events"
)

// Node is one instance of the view base abstraction, owning zero or more
// child nodes.
type Node struct {
	env *Env
	cfg Config

	// typeKey is the registry key this node was materialized under, empty
	// for roots built directly with New.
	typeKey string
	parent  *Node

	templateSrc string
	hasTemplate bool
	data        map[string]any

	items       []*Node
	childByName map[string]*Node
	childByID   map[string]*Node

	element        *dom.Element
	rendered       bool
	destroyed      bool
	displayRestore string

	emitter *events.Emitter
}

// New constructs an unrendered node. Children are not instantiated until
// Init; call Init on the root to materialize the whole tree.
func New(env *Env, cfg Config) *Node {
	if env == nil {
		env = &Env{}
	}
	cfg = cfg.withDefaults()

	n := &Node{
		env:         env,
		cfg:         cfg,
		data:        cfg.Data,
		childByName: make(map[string]*Node),
		childByID:   make(map[string]*Node),
		emitter:     events.NewEmitter(),
	}

	// Capture the template source now; an unknown name stays empty and is
	// reported when render validates it.
	if cfg.TemplateName != "" {
		if def, ok := env.templates().Lookup(cfg.TemplateName); ok {
			n.templateSrc = def.Source
			n.hasTemplate = true
		}
	}

	return n
}

// Name returns the node's diagnostic identity.
func (n *Node) Name() string {
	switch {
	case n.cfg.Name != "":
		return n.cfg.Name
	case n.typeKey != "":
		return n.typeKey
	case n.cfg.ElementPath != "":
		return n.cfg.ElementPath
	default:
		return "node"
	}
}

// Rendered reports whether the node's DOM content is currently present.
func (n *Node) Rendered() bool {
	return n.rendered
}

// Destroyed reports whether the node has been destroyed.
func (n *Node) Destroyed() bool {
	return n.destroyed
}

// Element returns the node's resolved DOM anchor, nil until resolved.
func (n *Node) Element() *dom.Element {
	return n.element
}

// Parent returns the owning node, nil for roots.
func (n *Node) Parent() *Node {
	return n.parent
}

// TypeKey returns the registry key the node was materialized under.
func (n *Node) TypeKey() string {
	return n.typeKey
}

// ItemID returns the node's explicit per-child identifier.
func (n *Node) ItemID() string {
	return n.cfg.ItemID
}

// Items returns the live children in declaration order. The returned slice
// is a copy; the node keeps exclusive ownership of its children.
func (n *Node) Items() []*Node {
	out := make([]*Node, len(n.items))
	copy(out, n.items)
	return out
}

// On subscribes a handler to a lifecycle notification and returns an
// unsubscribe function.
func (n *Node) On(event string, h events.Handler) func() {
	return n.emitter.On(event, h)
}

// emit sends a lifecycle notification.
func (n *Node) emit(event string, args ...any) {
	n.emitter.Emit(event, args...)
}

// =============================================================================
// Template binder
// =============================================================================

// SetTemplate resolves name in the template store and captures its source
// as this node's template. An unknown name leaves the previous template
// untouched: a node with no template is a valid pure-container
// configuration, so this is intentionally permissive.
func (n *Node) SetTemplate(name string) {
	def, ok := n.env.templates().Lookup(name)
	if !ok {
		n.env.logger().Debug("template not found, keeping previous",
			"node", n.Name(), "template", name)
		return
	}
	n.cfg.TemplateName = name
	n.templateSrc = def.Source
	n.hasTemplate = true
}

// SetData replaces the data mapping used at the next render. It does not
// trigger a render.
func (n *Node) SetData(data map[string]any) {
	n.data = data
}

// Data returns the current data mapping.
func (n *Node) Data() map[string]any {
	return n.data
}

// SetItems replaces the declared child specs. If children were already
// materialized they are destroyed and the new declarations materialized in
// their place, unrendered; the next Render places them.
func (n *Node) SetItems(specs []ChildSpec) {
	materialized := n.items != nil

	if materialized {
		for _, child := range n.items {
			child.Destroy()
		}
		n.items = nil
		n.childByName = make(map[string]*Node)
		n.childByID = make(map[string]*Node)
	}

	n.cfg.Items = specs
	if materialized {
		n.materializeChildren()
	}
}

// =============================================================================
// Child lookup
// =============================================================================

// ChildByID returns the child carrying the explicit identifier, or nil.
func (n *Node) ChildByID(itemID string) *Node {
	return n.childByID[itemID]
}

// ChildByType returns the child declared under the type key, or nil. When
// several children share a type key, the last declared wins.
func (n *Node) ChildByType(typeKey string) *Node {
	return n.childByName[typeKey]
}

// ChildAt returns the child at the structural position, or nil when out of
// range. Positional lookup is deliberately a separate method from the
// string-keyed lookups so the two modes cannot shadow each other.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

// Child returns the child matching key: by explicit identifier first, then
// by type key, else nil.
func (n *Node) Child(key string) *Node {
	if c := n.childByID[key]; c != nil {
		return c
	}
	return n.childByName[key]
}
