package view

import (
	"sort"
	"sync"
)

// Factory builds a node for a declared child. Factories receive the shared
// Env and the child's extra configuration (zero Config for the shortcut
// form).
type Factory func(env *Env, cfg Config) *Node

// Registry maps stable type keys to node factories. It replaces dotted
// namespace resolution with an explicit mapping populated at startup and
// queried by exact key; a failed lookup is an explicit outcome, never a
// silent nil.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds a type key to a factory, replacing any previous binding.
func (r *Registry) Register(key string, f Factory) {
	if key == "" || f == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[key] = f
}

// RegisterConfig binds a type key to a factory that instantiates a plain
// node from the base config, overlaid with the per-child extra config.
func (r *Registry) RegisterConfig(key string, base Config) {
	r.Register(key, func(env *Env, cfg Config) *Node {
		return New(env, overlayConfig(base, cfg))
	})
}

// Resolve returns the factory for the key and whether it exists.
func (r *Registry) Resolve(key string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[key]
	return f, ok
}

// Keys returns the registered type keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// overlayConfig merges a per-child override onto a base config. Scalar
// fields override when non-zero; Data entries override per key; Items
// replace wholesale when declared.
func overlayConfig(base, override Config) Config {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.ElementPath != "" {
		out.ElementPath = override.ElementPath
	}
	if override.AutoSentinel != "" {
		out.AutoSentinel = override.AutoSentinel
	}
	if override.ContainerClass != "" {
		out.ContainerClass = override.ContainerClass
	}
	if override.TemplateName != "" {
		out.TemplateName = override.TemplateName
	}
	if override.ItemID != "" {
		out.ItemID = override.ItemID
	}
	if override.AutoRender {
		out.AutoRender = true
	}
	if len(override.Items) > 0 {
		out.Items = override.Items
	}
	if len(override.Data) > 0 {
		merged := make(map[string]any, len(base.Data)+len(override.Data))
		for k, v := range base.Data {
			merged[k] = v
		}
		for k, v := range override.Data {
			merged[k] = v
		}
		out.Data = merged
	}
	if !override.Hooks.isZero() {
		out.Hooks = override.Hooks
	}
	return out
}
