// Package viewkit provides the public API for the viewkit view library.
//
// This is the recommended import for most applications:
//
//	import "github.com/viewkit-go/viewkit"
//
// Usage:
//
//	doc := viewkit.NewDocument()
//	env := &viewkit.Env{Doc: doc}
//	root := viewkit.New(env, viewkit.Config{
//		ElementPath:  "#app",
//		TemplateName: "app",
//		Items:        []viewkit.ChildSpec{viewkit.Child("header")},
//	})
//	res := root.Init()
//	if res.Failed() {
//		// handle res.Err()
//	}
package viewkit

import (
	"github.com/viewkit-go/viewkit/pkg/dom"
	"github.com/viewkit-go/viewkit/pkg/events"
	"github.com/viewkit-go/viewkit/pkg/id"
	"github.com/viewkit-go/viewkit/pkg/template"
	"github.com/viewkit-go/viewkit/pkg/view"
)

// =============================================================================
// Core tree types (re-export from pkg/view)
// =============================================================================

// Node is one view instance in the tree.
type Node = view.Node

// Config declares one view node.
type Config = view.Config

// ChildSpec declares one child of a node.
type ChildSpec = view.ChildSpec

// Hooks are the overridable lifecycle hook points.
type Hooks = view.Hooks

// Result is the discriminated outcome of Init and Render.
type Result = view.Result

// Env bundles the collaborators shared by a tree.
type Env = view.Env

// Registry maps type keys to node factories.
type Registry = view.Registry

// Factory builds a node for a declared child.
type Factory = view.Factory

// New constructs an unrendered node.
var New = view.New

// NewRegistry creates an empty registry.
var NewRegistry = view.NewRegistry

// Child declares a child by type key alone.
var Child = view.Child

// ChildWith declares a child with extra configuration.
var ChildWith = view.ChildWith

// =============================================================================
// Documents and templates
// =============================================================================

// Document is the live HTML document a tree renders into.
type Document = dom.Document

// Element is one document element.
type Element = dom.Element

// NewDocument creates an empty document.
var NewDocument = dom.NewDocument

// ParseDocument parses a complete HTML document.
var ParseDocument = dom.ParseDocument

// TemplateStore is an explicit registry of template definitions.
type TemplateStore = template.Store

// NewTemplateStore creates an empty template store.
var NewTemplateStore = template.NewStore

// =============================================================================
// Notifications and identifiers
// =============================================================================

// Emitter delivers lifecycle notifications.
type Emitter = events.Emitter

// Handler receives a lifecycle notification.
type Handler = events.Handler

// IDAllocator hands out process-unique anchor identifiers.
type IDAllocator = id.Allocator

// NewIDAllocator creates an allocator with the given prefix.
var NewIDAllocator = id.New
