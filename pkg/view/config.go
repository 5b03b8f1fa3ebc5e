package view

// Default configuration values applied by New.
const (
	// DefaultAutoSentinel marks a node whose anchor must be assigned an
	// allocated identifier at render time.
	DefaultAutoSentinel = "auto"

	// DefaultContainerClass tags the placeholder slots reserved for
	// declared children inside a node's rendered markup.
	DefaultContainerClass = "vk-slot"
)

// Config declares one view node.
type Config struct {
	// Name identifies the node in diagnostics. Defaults to the child type
	// key, then the element path.
	Name string

	// ElementPath is either the auto sentinel or a concrete selector for a
	// pre-existing, presumed-unique anchor.
	ElementPath string

	// AutoSentinel is the value compared against ElementPath to decide
	// whether the node needs an allocated id. Defaults to
	// DefaultAutoSentinel.
	AutoSentinel string

	// ContainerClass is the marker class of this node's placeholder slots.
	// Defaults to DefaultContainerClass.
	ContainerClass string

	// TemplateName names the template in the store. Empty means the node
	// renders no markup of its own (pure container).
	TemplateName string

	// Data is the mapping merged into the template at render time.
	Data map[string]any

	// Items declares the node's children, in slot order.
	Items []ChildSpec

	// ItemID is an optional explicit identifier under which the parent
	// indexes this node, independent of its type key.
	ItemID string

	// AutoRender renders the node immediately after a successful Init.
	AutoRender bool

	// Hooks are the node's lifecycle hook points.
	Hooks Hooks
}

// withDefaults fills in the sentinel and marker-class defaults.
func (c Config) withDefaults() Config {
	if c.AutoSentinel == "" {
		c.AutoSentinel = DefaultAutoSentinel
	}
	if c.ContainerClass == "" {
		c.ContainerClass = DefaultContainerClass
	}
	return c
}

// ChildSpec declares one child: a type key resolved through the registry,
// optionally with extra configuration. A nil Config is the shortcut form.
type ChildSpec struct {
	Type   string
	Config *Config
}

// Child declares a child by type key alone.
func Child(typeKey string) ChildSpec {
	return ChildSpec{Type: typeKey}
}

// ChildWith declares a child with extra configuration.
func ChildWith(typeKey string, cfg Config) ChildSpec {
	return ChildSpec{Type: typeKey, Config: &cfg}
}
