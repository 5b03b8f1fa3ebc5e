package view

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/viewkit-go/viewkit/pkg/dom"
	"github.com/viewkit-go/viewkit/pkg/id"
	"github.com/viewkit-go/viewkit/pkg/metrics"
	"github.com/viewkit-go/viewkit/pkg/template"
)

// Env bundles the collaborators shared by every node of a tree. It is owned
// by the application root and passed to New; nodes never create their own
// collaborators, so tests can substitute any of them.
type Env struct {
	// Doc is the document the tree renders into. Required.
	Doc *dom.Document

	// Templates resolves template names. Defaults to an empty store.
	Templates *template.Store

	// Engine produces markup from a template source and a data mapping.
	// Defaults to template.NewHTMLEngine().
	Engine template.Engine

	// Registry resolves child type keys to factories. Defaults to an
	// empty registry.
	Registry *Registry

	// IDs allocates anchor identifiers. Defaults to id.Default.
	IDs *id.Allocator

	// Logger receives structured lifecycle logs. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Metrics, when set, records lifecycle operations.
	Metrics *metrics.Lifecycle

	// Tracer, when set, traces render and destroy operations.
	Tracer trace.Tracer
}

func (e *Env) templates() *template.Store {
	if e.Templates == nil {
		e.Templates = template.NewStore()
	}
	return e.Templates
}

func (e *Env) engine() template.Engine {
	if e.Engine == nil {
		e.Engine = template.NewHTMLEngine()
	}
	return e.Engine
}

func (e *Env) registry() *Registry {
	if e.Registry == nil {
		e.Registry = NewRegistry()
	}
	return e.Registry
}

func (e *Env) ids() *id.Allocator {
	if e.IDs == nil {
		return id.Default
	}
	return e.IDs
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}
