// Package render serializes virtual and live trees to HTML.
//
// The serializer is what the dev server and the static exporter ship to
// browsers, and what tests assert against. Text nodes and attribute values
// are escaped; attribute order is sorted for deterministic output.
//
// # Quick Start
//
//	r := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := r.RenderToString(vdom.Div(vdom.Class("card"), "hello"))
//
// Live trees serialize the same way via RenderLiveToString, and ToVNode
// converts a live tree back into a virtual one, which is how the
// render/read-back round-trip is verified.
package render
