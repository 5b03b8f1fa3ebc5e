package view

// Hooks are the overridable lifecycle hook points. A nil before-hook
// approves its transition; a non-nil before-hook returning false cancels it
// silently: no state change, no after-hook, no completion notification.
// Cancellation is not an error.
//
// Enable hooks receive the opaque options value passed to Enable verbatim,
// letting callers parameterize re-enablement.
type Hooks struct {
	OnBeforeInit func(*Node) bool
	OnAfterInit  func(*Node)

	OnBeforeRender func(*Node) bool
	OnAfterRender  func(*Node)

	OnBeforeClear func(*Node) bool
	OnAfterClear  func(*Node)

	OnBeforeShow func(*Node) bool
	OnAfterShow  func(*Node)

	OnBeforeHide func(*Node) bool
	OnAfterHide  func(*Node)

	OnBeforeEnable func(*Node, any) bool
	OnAfterEnable  func(*Node, any)

	OnBeforeDisable func(*Node) bool
	OnAfterDisable  func(*Node)

	OnBeforeDestroy func(*Node) bool
	OnAfterDestroy  func(*Node)
}

// isZero reports whether no hook is set. Function fields are not
// comparable, so each is checked against nil.
func (h Hooks) isZero() bool {
	return h.OnBeforeInit == nil && h.OnAfterInit == nil &&
		h.OnBeforeRender == nil && h.OnAfterRender == nil &&
		h.OnBeforeClear == nil && h.OnAfterClear == nil &&
		h.OnBeforeShow == nil && h.OnAfterShow == nil &&
		h.OnBeforeHide == nil && h.OnAfterHide == nil &&
		h.OnBeforeEnable == nil && h.OnAfterEnable == nil &&
		h.OnBeforeDisable == nil && h.OnAfterDisable == nil &&
		h.OnBeforeDestroy == nil && h.OnAfterDestroy == nil
}

// approve evaluates a before-hook: absent means approved.
func approve(hook func(*Node) bool, n *Node) bool {
	if hook == nil {
		return true
	}
	return hook(n)
}

// after runs an after-hook if present.
func after(hook func(*Node), n *Node) {
	if hook != nil {
		hook(n)
	}
}
