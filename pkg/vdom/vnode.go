package vdom

import "github.com/puerro-dev/puerro/pkg/dom"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node. It is a pure description of a renderable
// tree: constructing one never touches the live display tree. View functions
// build a fresh tree on every pass and the differ discards it once applied.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes and event listeners
	Children []*VNode // Child nodes
	Text     string   // For KindText
}

// Props holds attributes and event listeners, keyed by attribute or event
// name.
type Props map[string]AttrVal

// AttrKind discriminates scalar attribute values from event listeners.
// The decision is made at construction time so the renderer and differ
// never inspect value types at runtime.
type AttrKind uint8

const (
	AttrScalar   AttrKind = iota // rendered as a literal attribute
	AttrListener                 // registered as an event listener
)

// String returns the string representation of the AttrKind.
func (k AttrKind) String() string {
	switch k {
	case AttrScalar:
		return "Scalar"
	case AttrListener:
		return "Listener"
	default:
		return "Unknown"
	}
}

// AttrVal is a tagged attribute value: either a scalar rendered as a
// literal attribute, or a listener registered under the attribute key.
// For listeners the key is the event name, case-sensitive, no
// normalization.
type AttrVal struct {
	Kind     AttrKind
	Scalar   any // for AttrScalar; nil means the attribute is skipped
	Listener dom.Handler
}

// Attr is a single keyed attribute passed to element constructors.
type Attr struct {
	Key string
	Val AttrVal
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// IsInteractive returns true if this node has at least one listener
// attribute.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for _, val := range v.Props {
		if val.Kind == AttrListener {
			return true
		}
	}
	return false
}
