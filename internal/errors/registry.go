package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Reconcile Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryReconcile,
		Message:  "Child slot out of range",
		Detail:   "The differ was asked to remove or replace a live child at an index the parent does not have. The previous virtual tree no longer matches the live tree, usually because the live tree was mutated outside the reconciler.",
		DocURL:   "https://puerro.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryReconcile,
		Message:  "Nil reconcile parent",
		Detail:   "Diff was called with a nil parent node. The differ mutates children of a caller-supplied live node and cannot proceed without one.",
		DocURL:   "https://puerro.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryReconcile,
		Message:  "Reconcile parent is a text node",
		Detail:   "Diff was called with a text node as the parent. Text nodes cannot have children; pass the enclosing element instead.",
		DocURL:   "https://puerro.dev/docs/errors/E003",
	},

	// ============================================
	// Mount Errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryReconcile,
		Message:  "Nil mount root",
		Detail:   "Mount requires a live root node to render into.",
		DocURL:   "https://puerro.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryReconcile,
		Message:  "Nil view function",
		Detail:   "Mount requires a view function to produce virtual trees from state.",
		DocURL:   "https://puerro.dev/docs/errors/E021",
	},

	// ============================================
	// Render Errors (E040-E049)
	// ============================================

	"E040": {
		Category: CategoryRender,
		Message:  "Unknown node kind",
		Detail:   "The serializer encountered a virtual node whose kind it does not understand.",
		DocURL:   "https://puerro.dev/docs/errors/E040",
	},

	// ============================================
	// Config Errors (E060-E069)
	// ============================================

	"E060": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be parsed.",
		DocURL:   "https://puerro.dev/docs/errors/E060",
	},
	"E061": {
		Category: CategoryConfig,
		Message:  "Invalid listen address",
		Detail:   "The configured listen address is not a valid host:port.",
		DocURL:   "https://puerro.dev/docs/errors/E061",
	},
}

// Register adds a custom error template to the registry.
// Used by tests and extensions.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
