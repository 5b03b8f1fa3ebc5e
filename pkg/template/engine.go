package template

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
)

// Engine turns a template source and a data mapping into markup. A nil data
// mapping is valid and renders the template with no bindings. Failures are
// returned as errors with a human-readable message; the lifecycle controller
// converts them into "error" notifications.
type Engine interface {
	Execute(source string, data map[string]any) (string, error)
}

// HTMLEngine renders templates with html/template, escaping interpolated
// values contextually.
type HTMLEngine struct {
	funcs htmltemplate.FuncMap
}

// NewHTMLEngine creates an engine with no extra template functions.
func NewHTMLEngine() *HTMLEngine {
	return &HTMLEngine{}
}

// Funcs registers additional template functions available to every
// template executed by this engine.
func (e *HTMLEngine) Funcs(funcs htmltemplate.FuncMap) *HTMLEngine {
	if e.funcs == nil {
		e.funcs = make(htmltemplate.FuncMap, len(funcs))
	}
	for name, fn := range funcs {
		e.funcs[name] = fn
	}
	return e
}

// Execute implements Engine.
func (e *HTMLEngine) Execute(source string, data map[string]any) (string, error) {
	t := htmltemplate.New("view")
	if e.funcs != nil {
		t = t.Funcs(e.funcs)
	}
	t, err := t.Parse(source)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}
