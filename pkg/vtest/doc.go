// Package vtest provides test helpers for views and mounted apps.
//
// Assertions render a virtual tree and check the produced HTML:
//
//	vtest.ExpectContains(t, view(state), "Welcome")
//	vtest.ExpectAttribute(t, view(state), "class", "active")
//
// The Harness mounts a view into a fresh live root and drives it the way
// a browser would:
//
//	h := vtest.NewHarness(t, view, state)
//	h.Click("data-action", "increment")
//	h.ExpectHTML("<output>1</output>")
package vtest
