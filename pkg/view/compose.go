package view

import (
	"fmt"

	"github.com/viewkit-go/viewkit/internal/errors"
	"github.com/viewkit-go/viewkit/pkg/dom"
)

// materializeChildren instantiates the declared child specs in declaration
// order. Invalid declarations and unknown type keys are reported and
// skipped; a bad entry never aborts the siblings. Children are initialized
// but not rendered.
func (n *Node) materializeChildren() {
	for i, spec := range n.cfg.Items {
		if spec.Type == "" {
			n.fail(errors.New("E041").
				WithDetail("node %q: child %d has no type key", n.Name(), i))
			continue
		}

		factory, ok := n.env.registry().Resolve(spec.Type)
		if !ok {
			n.fail(errors.New("E040").
				WithDetail("node %q: child %d type %q", n.Name(), i, spec.Type))
			continue
		}

		cfg := Config{}
		if spec.Config != nil {
			cfg = *spec.Config
		}
		child := factory(n.env, cfg)
		if child == nil {
			n.fail(errors.New("E041").
				WithDetail("node %q: factory for %q returned no node", n.Name(), spec.Type))
			continue
		}
		child.typeKey = spec.Type
		child.parent = n

		n.items = append(n.items, child)
		// Last declared wins for duplicate type keys.
		n.childByName[spec.Type] = child
		if child.cfg.ItemID != "" {
			n.childByID[child.cfg.ItemID] = child
		}

		child.Init()
	}
}

// placeChildren renders the materialized children into the parent's fresh
// markup. Placeholder slots in document order correspond to children in
// declaration order, one slot per child: an auto-positioned child gets a
// freshly allocated anchor id assigned to its slot, so no auto child ever
// collides with another, even across trees; a fixed-anchor child resolves
// its own selector and its slot stays empty.
//
// Fewer slots than declared children is a structural mismatch between
// template and declaration and panics; the surplus direction is harmless
// and the extra slots stay empty.
func (n *Node) placeChildren() {
	if len(n.items) == 0 {
		return
	}

	var slots []*dom.Element
	if n.element != nil {
		slots = n.element.FindByClass(n.cfg.ContainerClass)
	}
	if len(slots) < len(n.items) {
		panic(fmt.Sprintf(
			"view: node %q declares %d children but its markup has %d placeholder slots (class %q)",
			n.Name(), len(n.items), len(slots), n.cfg.ContainerClass))
	}

	for i, child := range n.items {
		if child.cfg.ElementPath != child.cfg.AutoSentinel {
			child.Render()
			continue
		}

		anchor := n.env.ids().NextID()
		slots[i].SetID(anchor)
		n.env.Metrics.RecordIDAllocated()

		child.Render("#" + anchor)
	}
}
