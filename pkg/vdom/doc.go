// Package vdom provides the virtual DOM core for Puerro.
//
// A VNode is a pure, immutable description of a renderable tree. View
// functions build a fresh VNode tree on every pass; the differ compares it
// against the previous tree and mutates a caller-supplied live tree
// (pkg/dom) in place so that only changed subtrees are re-rendered.
//
// # Core Types
//
// VNode is the fundamental building block representing elements and text.
// Props holds attributes keyed by name; each value is a tagged AttrVal that
// is either a scalar (rendered as a literal attribute) or a listener
// (registered as an event handler). The scalar/listener decision is made at
// construction time, never by runtime type inspection.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// # Rendering and Diffing
//
// Render materializes a VNode as a detached live node. Diff applies the
// difference between two VNode trees to a child slot of a live parent:
//
//	err := vdom.Diff(parent, nextTree, prevTree, 0)
//
// Children are reconciled strictly by position; there are no list keys.
package vdom
