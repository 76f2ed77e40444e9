// Package dev implements the development server.
//
// The dev server hosts a demo application whose state lives on the
// server: browser events are posted back, mutate the observable state,
// and the resulting repaint patches are broadcast to connected browsers
// over WebSocket. It exists to make the reconciler visible — every patch
// the differ applies shows up in the stream — and doubles as the example
// application for the CLI.
//
// Endpoints:
//
//	GET  /          demo page
//	GET  /fragment  current live tree as HTML
//	GET  /ws        WebSocket patch stream
//	POST /event/{action}  dispatch an event to the live tree
//	GET  /metrics   Prometheus metrics (if enabled)
package dev
