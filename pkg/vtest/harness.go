package vtest

import (
	"strings"
	"testing"

	"github.com/puerro-dev/puerro/pkg/dom"
	"github.com/puerro-dev/puerro/pkg/mount"
	"github.com/puerro-dev/puerro/pkg/observable"
	"github.com/puerro-dev/puerro/pkg/render"
	"github.com/puerro-dev/puerro/pkg/vdom"
)

// Harness mounts a view into a fresh live root and drives it the way a
// browser would: dispatch events, then assert on the repainted HTML.
type Harness struct {
	t          *testing.T
	root       *dom.Node
	controller *mount.Controller
	patches    *vdom.PatchLog
}

// NewHarness mounts view against state. A nil state gets an empty one.
//
// Example:
//
//	h := vtest.NewHarness(t, counterView, state)
//	h.Click("data-action", "increment")
//	h.ExpectHTML("<output>1</output>")
func NewHarness(t *testing.T, view mount.View, state *observable.Object, opts ...mount.Option) *Harness {
	t.Helper()

	h := &Harness{
		t:       t,
		root:    dom.NewElement("body"),
		patches: &vdom.PatchLog{},
	}
	opts = append([]mount.Option{mount.WithRecorder(h.patches)}, opts...)

	ctrl, err := mount.Mount(h.root, view, state, opts...)
	if err != nil {
		t.Fatalf("vtest: mount failed: %v", err)
	}
	h.controller = ctrl
	t.Cleanup(ctrl.Unmount)

	return h
}

// Controller returns the underlying mount controller.
func (h *Harness) Controller() *mount.Controller {
	return h.controller
}

// Root returns the live root node.
func (h *Harness) Root() *dom.Node {
	return h.root
}

// Patches returns the accumulated patch log. Call Reset on it between
// interactions to assert on a single repaint.
func (h *Harness) Patches() *vdom.PatchLog {
	return h.patches
}

// Find returns the first live element whose attribute key equals value, or
// nil.
func (h *Harness) Find(key, value string) *dom.Node {
	return findByAttr(h.root, key, value)
}

// Dispatch sends an event to the first element matching the attribute.
// It fails the test if no element matches.
func (h *Harness) Dispatch(eventType, key, value, payload string) {
	h.t.Helper()
	target := h.Find(key, value)
	if target == nil {
		h.t.Fatalf("vtest: no element with %s=%q in:\n%s", key, value, h.HTML())
	}
	target.DispatchEvent(dom.Event{Type: eventType, Value: payload})
}

// Click dispatches a click event to the element matching the attribute.
func (h *Harness) Click(key, value string) {
	h.t.Helper()
	h.Dispatch("click", key, value, "")
}

// Submit dispatches a submit event with the given payload.
func (h *Harness) Submit(key, value, payload string) {
	h.t.Helper()
	h.Dispatch("submit", key, value, payload)
}

// Input dispatches an input event with the given payload.
func (h *Harness) Input(key, value, payload string) {
	h.t.Helper()
	h.Dispatch("input", key, value, payload)
}

// HTML serializes the current live tree.
func (h *Harness) HTML() string {
	h.t.Helper()
	html, err := render.RenderLiveToString(h.root)
	if err != nil {
		h.t.Fatalf("vtest: serialize failed: %v", err)
	}
	return html
}

// ExpectHTML asserts the live tree's HTML contains the substring.
func (h *Harness) ExpectHTML(expected string) {
	h.t.Helper()
	html := h.HTML()
	if !strings.Contains(html, expected) {
		h.t.Errorf("expected live tree to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotHTML asserts the live tree's HTML does not contain the
// substring.
func (h *Harness) ExpectNotHTML(unexpected string) {
	h.t.Helper()
	html := h.HTML()
	if strings.Contains(html, unexpected) {
		h.t.Errorf("expected live tree to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

func findByAttr(n *dom.Node, key, want string) *dom.Node {
	if n == nil {
		return nil
	}
	if v, ok := n.Attr(key); ok && v == want {
		return n
	}
	for _, child := range n.Children() {
		if found := findByAttr(child, key, want); found != nil {
			return found
		}
	}
	return nil
}
