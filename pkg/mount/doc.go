// Package mount glues state, view, and reconciler together.
//
// A Controller owns the last-rendered virtual tree and a live root node.
// It runs the view function against the current state on construction and
// again whenever the state container notifies, then repaints the root via
// a Strategy: diff-based (the default), full replace, or any custom
// repaint function supplied at construction.
//
// # Quick Start
//
//	state := observable.NewObject(observable.Snapshot{"count": 0})
//	view := func(s *observable.Object) *vdom.VNode {
//	    n, _ := s.Value("count")
//	    return vdom.Div(vdom.Textf("count: %v", n))
//	}
//
//	root := dom.NewElement("body")
//	ctrl, err := mount.Mount(root, view, state)
//
//	state.Push("count", 1) // repaints synchronously
//	defer ctrl.Unmount()
//
// The state container is passed in and owned by the caller; there is no
// process-wide store.
package mount
