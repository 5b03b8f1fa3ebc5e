// Package manifest loads the YAML view manifest that declares a project's
// node types, templates, and root tree, and wires it into a view
// environment.
package manifest

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viewkit-go/viewkit/internal/errors"
	"github.com/viewkit-go/viewkit/pkg/template"
	"github.com/viewkit-go/viewkit/pkg/view"
)

// File is a parsed view manifest.
type File struct {
	// Templates holds inline template sources by name. Templates loaded
	// from the template directory take the same store; inline entries win
	// on name collision.
	Templates map[string]string `yaml:"templates"`

	// Types declares reusable node types keyed by the type key children
	// reference.
	Types map[string]NodeSpec `yaml:"types"`

	// Root declares the tree root.
	Root *NodeSpec `yaml:"root"`
}

// NodeSpec is the YAML shape of a node declaration.
type NodeSpec struct {
	Name           string         `yaml:"name"`
	Element        string         `yaml:"element"`
	Template       string         `yaml:"template"`
	ItemID         string         `yaml:"id"`
	AutoRender     bool           `yaml:"autoRender"`
	ContainerClass string         `yaml:"containerClass"`
	Data           map[string]any `yaml:"data"`
	Items          []ItemSpec     `yaml:"items"`
}

// ItemSpec is the YAML shape of a child declaration: a type key plus
// optional extra configuration.
type ItemSpec struct {
	Type   string    `yaml:"type"`
	Config *NodeSpec `yaml:"config"`
}

// Load parses the manifest at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E080").
			WithDetail("manifest %s: %v", path, err)
	}
	return Parse(data)
}

// Parse parses manifest bytes.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, errors.New("E080").
			WithDetail("invalid manifest YAML: %v", err).
			WithSuggestion("Check the manifest against the views.yaml schema")
	}
	if f.Root == nil {
		return nil, errors.New("E080").
			WithDetail("manifest declares no root node")
	}
	return f, nil
}

// Apply registers the manifest's inline templates and node types on the
// environment. Call before building the root.
func (f *File) Apply(env *view.Env) {
	if env.Templates == nil {
		env.Templates = template.NewStore()
	}
	for name, src := range f.Templates {
		env.Templates.Add(name, src)
	}
	if env.Registry == nil {
		env.Registry = view.NewRegistry()
	}
	for key, spec := range f.Types {
		env.Registry.RegisterConfig(key, spec.Config())
	}
}

// BuildRoot constructs the manifest's root node against env. Apply must
// have run first so the root's children resolve.
func (f *File) BuildRoot(env *view.Env) *view.Node {
	return view.New(env, f.Root.Config())
}

// Config converts the YAML spec to a view configuration.
func (s NodeSpec) Config() view.Config {
	cfg := view.Config{
		Name:           s.Name,
		ElementPath:    s.Element,
		TemplateName:   s.Template,
		ItemID:         s.ItemID,
		AutoRender:     s.AutoRender,
		ContainerClass: s.ContainerClass,
		Data:           s.Data,
	}
	for _, item := range s.Items {
		if item.Config == nil {
			cfg.Items = append(cfg.Items, view.Child(item.Type))
			continue
		}
		child := item.Config.Config()
		cfg.Items = append(cfg.Items, view.ChildWith(item.Type, child))
	}
	return cfg
}
