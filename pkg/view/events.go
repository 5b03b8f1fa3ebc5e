package view

// Lifecycle notification names emitted on a node's emitter. Each transition
// emits its "before" notification ahead of the cancellation check and its
// completion notification after the structural effect.
const (
	EventBeforeInit    = "beforeinit"
	EventInit          = "init"
	EventBeforeRender  = "beforerender"
	EventRender        = "render"
	EventBeforeClear   = "beforeclear"
	EventClear         = "clear"
	EventBeforeShow    = "beforeshow"
	EventShow          = "show"
	EventBeforeHide    = "beforehide"
	EventHide          = "hide"
	EventBeforeEnable  = "beforeenable"
	EventEnable        = "enable"
	EventBeforeDisable = "beforedisable"
	EventDisable       = "disable"
	EventBeforeDestroy = "beforedestroy"
	EventDestroy       = "destroy"

	// EventError carries a descriptive, component-identifying message for
	// every recoverable failure.
	EventError = "error"
)
