package vdom

import (
	"github.com/puerro-dev/puerro/internal/errors"
	"github.com/puerro-dev/puerro/pkg/dom"
)

// Differ applies the minimal set of mutations to a live tree so that it
// matches a new virtual tree. Children are matched strictly by position:
// there is no keyed reconciliation, so inserting or removing a child in the
// middle of a list replaces every subsequent sibling. That is the documented
// worst case, not an optimization target.
type Differ struct {
	// Recorder, if set, observes every applied mutation.
	Recorder Recorder
}

// Diff compares next against prev and mutates the child slot index of
// parent in place.
//
//   - prev absent: render next and append it to parent (append, not
//     insert-at-index).
//   - next absent: remove the live child at index.
//   - Changed(prev, next): replace the live child at index with a fresh
//     render of next (full subtree re-render).
//   - otherwise: recurse positionally into the children of the live child
//     at index.
func (d *Differ) Diff(parent *dom.Node, next, prev *VNode, index int) error {
	if parent == nil {
		return errors.New("E002")
	}
	if parent.Type == dom.TextNode {
		return errors.New("E003")
	}

	switch {
	case prev == nil && next == nil:
		return nil

	case prev == nil:
		parent.AppendChild(Render(next))
		d.record(Patch{Op: PatchAppend, Index: parent.ChildCount() - 1, Tag: nodeLabel(next)})
		return nil

	case next == nil:
		if parent.RemoveChild(index) == nil {
			return errors.New("E001").
				WithDetail("remove child %d of <%s> with %d children", index, parent.Tag, parent.ChildCount())
		}
		d.record(Patch{Op: PatchRemove, Index: index, Tag: nodeLabel(prev)})
		return nil

	case Changed(prev, next):
		if parent.ReplaceChild(index, Render(next)) == nil {
			return errors.New("E001").
				WithDetail("replace child %d of <%s> with %d children", index, parent.Tag, parent.ChildCount())
		}
		d.record(Patch{Op: PatchReplace, Index: index, Tag: nodeLabel(next)})
		return nil

	default:
		return d.diffChildren(parent, next, prev, index)
	}
}

// diffChildren recurses into each child position of the live node at slot
// index.
func (d *Differ) diffChildren(parent *dom.Node, next, prev *VNode, index int) error {
	target := parent.ChildAt(index)
	if target == nil {
		return errors.New("E001").
			WithDetail("recurse into child %d of <%s> with %d children", index, parent.Tag, parent.ChildCount())
	}

	maxLen := len(next.Children)
	if len(prev.Children) > maxLen {
		maxLen = len(prev.Children)
	}

	// Removals shift later live slots left; track them so positions stay
	// aligned when the new child list is shorter than the old one.
	removed := 0
	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *VNode
		if i < len(prev.Children) {
			prevChild = prev.Children[i]
		}
		if i < len(next.Children) {
			nextChild = next.Children[i]
		}

		if err := d.Diff(target, nextChild, prevChild, i-removed); err != nil {
			return err
		}
		if prevChild != nil && nextChild == nil {
			removed++
		}
	}

	return nil
}

// record forwards a patch to the recorder, if one is configured.
func (d *Differ) record(p Patch) {
	if d.Recorder != nil {
		d.Recorder.Record(p)
	}
}

// Diff applies next against prev at child slot index of parent, without
// recording. See Differ.Diff.
func Diff(parent *dom.Node, next, prev *VNode, index int) error {
	return (&Differ{}).Diff(parent, next, prev, index)
}
