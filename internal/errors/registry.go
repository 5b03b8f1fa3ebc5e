package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Lifecycle Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryLifecycle,
		Message:  "Missing element path",
		Detail:   "The node has no element path. Configure a concrete selector, or the auto sentinel for nodes placed by their parent.",
	},
	"E002": {
		Category: CategoryLifecycle,
		Message:  "Element not found",
		Detail:   "The element selector matched nothing in the document. The anchor may not exist yet or was removed externally.",
	},
	"E003": {
		Category: CategoryLifecycle,
		Message:  "Ambiguous element selector",
		Detail:   "The element selector matched more than one element. Anchors must be unique within the document.",
	},
	"E004": {
		Category: CategoryLifecycle,
		Message:  "Node already destroyed",
		Detail:   "Lifecycle operations are not valid on a destroyed node.",
	},

	// ============================================
	// Template Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryTemplate,
		Message:  "Unknown template",
		Detail:   "The configured template name is not registered in the template store.",
	},
	"E021": {
		Category: CategoryTemplate,
		Message:  "Empty template source",
		Detail:   "The template definition resolved to an empty source string.",
	},
	"E022": {
		Category: CategoryTemplate,
		Message:  "Template execution failed",
		Detail:   "The templating engine reported a fault while producing markup.",
	},
	"E023": {
		Category: CategoryTemplate,
		Message:  "Markup insertion failed",
		Detail:   "The produced markup could not be parsed into the element.",
	},

	// ============================================
	// Registry Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryRegistry,
		Message:  "Unknown component type",
		Detail:   "No factory is registered for the declared child type key.",
	},
	"E041": {
		Category: CategoryRegistry,
		Message:  "Invalid child declaration",
		Detail:   "A declared child entry is malformed (empty type key or nil factory result).",
	},

	// ============================================
	// Config Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No viewkit.json was found in the working directory or its parents.",
	},
	"E061": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "viewkit.json exists but could not be parsed.",
	},

	// ============================================
	// CLI Errors (E080-E099)
	// ============================================

	"E080": {
		Category: CategoryCLI,
		Message:  "Manifest load failed",
		Detail:   "The tree manifest could not be read or parsed.",
	},
	"E081": {
		Category: CategoryCLI,
		Message:  "Render failed",
		Detail:   "The root node did not render successfully.",
	},
	"E082": {
		Category: CategoryCLI,
		Message:  "Publish failed",
		Detail:   "The rendered snapshot could not be uploaded.",
	},
}
