package mount

import (
	"github.com/puerro-dev/puerro/pkg/dom"
	"github.com/puerro-dev/puerro/pkg/vdom"
)

// Strategy repaints root so it shows next, given the previously rendered
// tree prev. It is chosen at construction time; swapping strategies means
// passing a different function, not subclassing anything.
type Strategy func(root *dom.Node, next, prev *vdom.VNode, rec vdom.Recorder) error

// StrategyDiff reconciles the root's single child in place, re-rendering
// only changed subtrees.
func StrategyDiff(root *dom.Node, next, prev *vdom.VNode, rec vdom.Recorder) error {
	d := &vdom.Differ{Recorder: rec}
	return d.Diff(root, next, prev, 0)
}

// StrategyReplace discards the root's single child and renders next from
// scratch on every repaint.
func StrategyReplace(root *dom.Node, next, prev *vdom.VNode, rec vdom.Recorder) error {
	fresh := vdom.Render(next)
	if root.ChildCount() == 0 {
		root.AppendChild(fresh)
		if rec != nil {
			rec.Record(vdom.Patch{Op: vdom.PatchAppend, Index: 0, Tag: fresh.Tag})
		}
		return nil
	}
	root.ReplaceChild(0, fresh)
	if rec != nil {
		rec.Record(vdom.Patch{Op: vdom.PatchReplace, Index: 0, Tag: fresh.Tag})
	}
	return nil
}
