package view

import (
	"fmt"
	"time"

	"github.com/viewkit-go/viewkit/internal/errors"
)

// Init resolves the node's own anchor (auto anchors stay unresolved until a
// parent render passes one down), recursively instantiates the declared
// children without rendering them, and, when AutoRender is configured,
// immediately renders.
func (n *Node) Init() Result {
	if n.destroyed {
		return n.fail(errors.New("E004").WithDetail("node %q", n.Name()))
	}

	// Fixed anchors resolve now; zero matches means "not yet resolvable"
	// and is tolerated, a duplicate anchor is an error.
	if n.cfg.ElementPath != "" && n.cfg.ElementPath != n.cfg.AutoSentinel {
		els := n.env.Doc.Query(n.cfg.ElementPath)
		switch {
		case len(els) > 1:
			return n.fail(errors.New("E003").
				WithDetail("node %q: selector %q matched %d elements", n.Name(), n.cfg.ElementPath, len(els)))
		case len(els) == 1:
			n.element = els[0]
		}
	}

	n.emit(EventBeforeInit)
	if !approve(n.cfg.Hooks.OnBeforeInit, n) {
		return resultCancelled()
	}

	n.materializeChildren()

	after(n.cfg.Hooks.OnAfterInit, n)
	n.emit(EventInit)
	n.env.logger().Debug("node initialized", "node", n.Name(), "children", len(n.items))

	if n.cfg.AutoRender {
		return n.Render()
	}
	return resultOK(n)
}

// Render materializes the node's markup into its anchor and recursively
// renders its children. An optional container selector overrides anchor
// resolution for this render; parents pass a freshly allocated "#id" here
// for auto-positioned children.
//
// Render is idempotent: rendering an already-rendered node clears first.
// The discriminated Result tells callers whether the render completed, was
// cancelled by a before-hook, or aborted on a recoverable error (which is
// also reported on the "error" notification). A placeholder-slot deficit is
// a template/declaration mismatch and panics.
func (n *Node) Render(containerSelector ...string) Result {
	start := time.Now()
	sel := ""
	if len(containerSelector) > 0 {
		sel = containerSelector[0]
	}

	if n.destroyed {
		return n.fail(errors.New("E004").WithDetail("node %q", n.Name()))
	}

	// Fail fast before any notification: no element path, or a template
	// name the store cannot resolve. A container selector never substitutes
	// for a missing path; auto nodes carry the sentinel, which is a path.
	if n.cfg.ElementPath == "" {
		return n.renderFailed(errors.New("E001").WithDetail("node %q", n.Name()))
	}
	if n.cfg.TemplateName != "" {
		def, ok := n.env.templates().Lookup(n.cfg.TemplateName)
		if !ok {
			return n.renderFailed(errors.New("E020").
				WithDetail("node %q: template %q", n.Name(), n.cfg.TemplateName))
		}
		n.templateSrc = def.Source
		n.hasTemplate = true
	}

	n.emit(EventBeforeRender)
	if !approve(n.cfg.Hooks.OnBeforeRender, n) {
		n.env.Metrics.RecordRender(n.Name(), "cancelled", 0)
		return resultCancelled()
	}

	finish := n.startSpan("render")

	if err := n.resolveRenderTarget(sel); err != nil {
		finish(err)
		return n.renderFailed(err)
	}

	// Idempotent: no-op unless currently rendered.
	n.Clear()

	if n.hasTemplate && n.templateSrc == "" {
		err := errors.New("E021").WithDetail("node %q: template %q", n.Name(), n.cfg.TemplateName)
		finish(err)
		return n.renderFailed(err)
	}

	if n.hasTemplate {
		markup, err := n.env.engine().Execute(n.templateSrc, n.data)
		if err != nil {
			werr := errors.New("E022").
				WithDetail("node %q: %v", n.Name(), err).Wrap(err)
			finish(werr)
			return n.renderFailed(werr)
		}
		if err := n.element.AppendHTML(markup); err != nil {
			werr := errors.New("E023").
				WithDetail("node %q: %v", n.Name(), err).Wrap(err)
			finish(werr)
			return n.renderFailed(werr)
		}
	}

	n.placeChildren()

	n.rendered = true
	n.env.Metrics.NodeRendered()
	n.env.Metrics.RecordRender(n.Name(), "success", time.Since(start).Seconds())

	after(n.cfg.Hooks.OnAfterRender, n)
	n.emit(EventRender)
	n.env.logger().Debug("node rendered", "node", n.Name(), "anchor", n.element.ID())
	finish(nil)

	return resultOK(n)
}

// resolveRenderTarget resolves the element the render writes into. An
// explicit container selector wins; a fixed element path is re-queried on
// every render so an externally replaced anchor is picked up (or reported
// missing); an auto node with no override reuses its previously assigned
// anchor.
func (n *Node) resolveRenderTarget(sel string) *errors.Error {
	lookup := sel
	if lookup == "" {
		if n.cfg.ElementPath == n.cfg.AutoSentinel {
			if n.element == nil {
				return errors.New("E002").
					WithDetail("node %q: auto-positioned node rendered without a container selector", n.Name())
			}
			return nil
		}
		lookup = n.cfg.ElementPath
	}

	els := n.env.Doc.Query(lookup)
	switch {
	case len(els) == 0:
		return errors.New("E002").WithDetail("node %q: selector %q", n.Name(), lookup)
	case len(els) > 1:
		return errors.New("E003").
			WithDetail("node %q: selector %q matched %d elements", n.Name(), lookup, len(els))
	}
	n.element = els[0]
	return nil
}

// Clear removes the node's DOM content, leaving the instance intact and
// re-renderable. Children are cleared before the parent's markup is
// touched, so no child ever outlives its parent's DOM content. No-op
// unless rendered.
func (n *Node) Clear() {
	if !n.rendered {
		return
	}

	n.emit(EventBeforeClear)
	if !approve(n.cfg.Hooks.OnBeforeClear, n) {
		return
	}

	for _, child := range n.items {
		child.Clear()
	}

	if n.element != nil {
		for _, child := range n.element.Children() {
			child.DetachListeners()
		}
		n.element.DetachListeners()
		n.element.Empty()
	}

	n.rendered = false
	n.env.Metrics.NodeCleared()
	n.env.Metrics.RecordClear()

	after(n.cfg.Hooks.OnAfterClear, n)
	n.emit(EventClear)
}

// Show restores the display value captured by the last Hide, recursing into
// children first. No-op unless rendered.
func (n *Node) Show() {
	if !n.rendered {
		return
	}

	n.emit(EventBeforeShow)
	if !approve(n.cfg.Hooks.OnBeforeShow, n) {
		return
	}

	for _, child := range n.items {
		child.Show()
	}
	if n.element != nil {
		n.element.SetStyleDisplay(n.displayRestore)
	}

	after(n.cfg.Hooks.OnAfterShow, n)
	n.emit(EventShow)
}

// Hide captures the current display value so Show can restore it exactly,
// then blanks the node, recursing into children first. No-op unless
// rendered.
func (n *Node) Hide() {
	if !n.rendered {
		return
	}

	n.emit(EventBeforeHide)
	if !approve(n.cfg.Hooks.OnBeforeHide, n) {
		return
	}

	for _, child := range n.items {
		child.Hide()
	}
	if n.element != nil {
		n.displayRestore = n.element.StyleDisplay()
		n.element.SetStyleDisplay("none")
	}

	after(n.cfg.Hooks.OnAfterHide, n)
	n.emit(EventHide)
}

// Enable re-enables the node, recursing into children first. The opaque
// options value is forwarded verbatim to both enable hooks so callers can
// parameterize re-enablement. No-op unless rendered.
func (n *Node) Enable(opts any) {
	if !n.rendered {
		return
	}

	n.emit(EventBeforeEnable, opts)
	if n.cfg.Hooks.OnBeforeEnable != nil && !n.cfg.Hooks.OnBeforeEnable(n, opts) {
		return
	}

	for _, child := range n.items {
		child.Enable(opts)
	}
	if n.element != nil {
		n.element.RemoveAttr("data-disabled")
	}

	if n.cfg.Hooks.OnAfterEnable != nil {
		n.cfg.Hooks.OnAfterEnable(n, opts)
	}
	n.emit(EventEnable, opts)
}

// Disable disables the node, recursing into children first. No-op unless
// rendered.
func (n *Node) Disable() {
	if !n.rendered {
		return
	}

	n.emit(EventBeforeDisable)
	if !approve(n.cfg.Hooks.OnBeforeDisable, n) {
		return
	}

	for _, child := range n.items {
		child.Disable()
	}
	if n.element != nil {
		n.element.SetAttr("data-disabled", "true")
	}

	after(n.cfg.Hooks.OnAfterDisable, n)
	n.emit(EventDisable)
}

// Destroy tears the node down: DOM content cleared, children destroyed in
// declaration order and released, DOM event bindings un-delegated. After
// Destroy the instance is no longer usable.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}

	n.emit(EventBeforeDestroy)
	if !approve(n.cfg.Hooks.OnBeforeDestroy, n) {
		return
	}

	finish := n.startSpan("destroy")

	n.Clear()

	for _, child := range n.items {
		child.Destroy()
	}
	n.items = nil
	n.childByName = make(map[string]*Node)
	n.childByID = make(map[string]*Node)

	if n.element != nil {
		n.element.DetachListeners()
	}

	n.destroyed = true
	n.env.Metrics.RecordDestroy()

	after(n.cfg.Hooks.OnAfterDestroy, n)
	n.emit(EventDestroy)

	// Lifecycle notification wiring is released last so the destroy
	// notification itself is still delivered.
	n.emitter.RemoveAll()
	n.env.logger().Debug("node destroyed", "node", n.Name())
	finish(nil)
}

// renderFailed reports a recoverable render failure.
func (n *Node) renderFailed(err *errors.Error) Result {
	n.env.Metrics.RecordRender(n.Name(), "error", 0)
	return n.fail(err)
}

// fail reports a recoverable error on the "error" notification and returns
// the failed Result. Prior state is left intact.
func (n *Node) fail(err *errors.Error) Result {
	msg := fmt.Sprintf("%s: %s", n.Name(), err.Error())
	if err.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, err.Detail)
	}
	n.env.logger().Error("lifecycle error", "node", n.Name(), "code", err.Code, "err", err)
	n.env.Metrics.RecordError(err.Code)
	n.emit(EventError, msg)
	return resultFailed(err)
}
