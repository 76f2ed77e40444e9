// Package dom provides the live display tree the reconciler mutates.
//
// The tree is an in-memory stand-in for a host document: elements carry a
// tag, string attributes, event listeners, and ordered children; text nodes
// carry literal content. The reconciler in pkg/vdom never owns a tree
// outright — it mutates children of a parent node supplied by the caller.
//
// # Quick Start
//
//	root := dom.NewElement("div")
//	root.AppendChild(dom.NewText("hello"))
//	root.SetAttr("class", "greeting")
//
// Event listeners fire synchronously, in registration order:
//
//	btn := dom.NewElement("button")
//	btn.AddEventListener("click", func(e dom.Event) { clicks++ })
//	btn.DispatchEvent(dom.Event{Type: "click"})
package dom
